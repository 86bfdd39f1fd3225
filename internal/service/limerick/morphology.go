package limerick

import (
	"context"
	"fmt"
	"strings"
)

// Tense of a conjugated verb.
type Tense int

const (
	TensePresent Tense = iota
	TensePast
)

// Subject selects person and number for agreement.
type Subject int

const (
	FirstSingular Subject = iota
	SecondPerson
	ThirdSingular
	FirstPlural
	ThirdPlural
)

type irregularForms struct {
	past     string
	present3 string
}

// irregularVerbs is consulted before any rule. "be" is handled separately
// because it also agrees in the past tense.
var irregularVerbs = map[string]irregularForms{
	"go":     {past: "went", present3: "goes"},
	"make":   {past: "made"},
	"have":   {past: "had", present3: "has"},
	"do":     {past: "did", present3: "does"},
	"say":    {past: "said"},
	"see":    {past: "saw"},
	"come":   {past: "came"},
	"take":   {past: "took"},
	"know":   {past: "knew"},
	"get":    {past: "got"},
	"give":   {past: "gave"},
	"find":   {past: "found"},
	"think":  {past: "thought"},
	"tell":   {past: "told"},
	"become": {past: "became"},
	"leave":  {past: "left"},
	"feel":   {past: "felt"},
	"bring":  {past: "brought"},
	"begin":  {past: "began"},
	"keep":   {past: "kept"},
	"hold":   {past: "held"},
	"write":  {past: "wrote"},
	"stand":  {past: "stood"},
	"hear":   {past: "heard"},
	"run":    {past: "ran"},
	"sit":    {past: "sat"},
	"speak":  {past: "spoke"},
	"seek":   {past: "sought"},
	"fly":    {past: "flew", present3: "flies"},
	"sing":   {past: "sang"},
	"swim":   {past: "swam"},
	"fall":   {past: "fell"},
	"lie":    {past: "lay"},
}

// Morphology approximates English inflection: a lookup table for
// irregular verbs, simple suffix rules for the rest. Best effort only.
type Morphology struct {
	tagger    tagger
	inflector inflector
}

// NewMorphology creates a Morphology helper.
func NewMorphology(t tagger, inf inflector) *Morphology {
	return &Morphology{tagger: t, inflector: inf}
}

// Conjugate inflects verb for tense and subject.
func (m *Morphology) Conjugate(ctx context.Context, verb string, tense Tense, subject Subject) (string, error) {
	base, err := m.lemma(ctx, verb)
	if err != nil {
		return "", err
	}
	if base == "" {
		return verb, nil
	}

	if base == "be" {
		return conjugateBe(tense, subject), nil
	}

	if forms, ok := irregularVerbs[base]; ok {
		switch {
		case tense == TensePast && forms.past != "":
			return forms.past, nil
		case tense == TensePresent && subject == ThirdSingular && forms.present3 != "":
			return forms.present3, nil
		}
	}

	if tense == TensePresent {
		if subject == ThirdSingular && !strings.HasSuffix(base, "s") {
			return base + "s", nil
		}
		return base, nil
	}
	return regularPast(base), nil
}

// HandlePlurality returns the plural or singular form of word. It never
// returns an empty string.
func (m *Morphology) HandlePlurality(word string, plural bool) string {
	var out string
	if plural {
		out = m.inflector.Plural(word)
	} else {
		out = m.inflector.Singular(word)
	}
	if out == "" {
		return word
	}
	return out
}

func (m *Morphology) lemma(ctx context.Context, verb string) (string, error) {
	tokens, err := m.tagger.Tag(ctx, verb)
	if err != nil {
		return "", fmt.Errorf("lemmatise %q: %w", verb, err)
	}
	if len(tokens) == 0 {
		return "", nil
	}
	if l := strings.ToLower(tokens[0].Lemma); l != "" {
		return l, nil
	}
	return strings.ToLower(tokens[0].Text), nil
}

func conjugateBe(tense Tense, subject Subject) string {
	if tense == TensePast {
		if subject == FirstSingular || subject == ThirdSingular {
			return "was"
		}
		return "were"
	}
	switch subject {
	case FirstSingular:
		return "am"
	case ThirdSingular:
		return "is"
	default:
		return "are"
	}
}

func regularPast(base string) string {
	switch {
	case endsWithConsonantY(base):
		return base[:len(base)-1] + "ied"
	case strings.HasSuffix(base, "ed"):
		return base
	case strings.HasSuffix(base, "e"):
		return base + "d"
	default:
		return base + "ed"
	}
}

func endsWithConsonantY(s string) bool {
	if len(s) < 2 || s[len(s)-1] != 'y' {
		return false
	}
	return !strings.ContainsRune("aeiouy", rune(s[len(s)-2]))
}
