package languagetool

// checkResponse is the subset of the /v2/check response we use.
type checkResponse struct {
	Matches []apiMatch `json:"matches"`
}

type apiMatch struct {
	Message      string           `json:"message"`
	Offset       int              `json:"offset"`
	Length       int              `json:"length"`
	Replacements []apiReplacement `json:"replacements"`
	Rule         apiRule          `json:"rule"`
}

type apiReplacement struct {
	Value string `json:"value"`
}

type apiRule struct {
	ID string `json:"id"`
}
