package domain

// PartOfSpeech is a coarse universal part-of-speech tag.
type PartOfSpeech string

const (
	PosNoun  PartOfSpeech = "NOUN"
	PosVerb  PartOfSpeech = "VERB"
	PosAdj   PartOfSpeech = "ADJ"
	PosAdv   PartOfSpeech = "ADV"
	PosAdp   PartOfSpeech = "ADP"
	PosDet   PartOfSpeech = "DET"
	PosPron  PartOfSpeech = "PRON"
	PosNum   PartOfSpeech = "NUM"
	PosConj  PartOfSpeech = "CONJ"
	PosPunct PartOfSpeech = "PUNCT"
	PosOther PartOfSpeech = "X"
)

func (p PartOfSpeech) String() string { return string(p) }

// IsValid reports whether p is one of the known tags.
func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PosNoun, PosVerb, PosAdj, PosAdv, PosAdp, PosDet, PosPron, PosNum, PosConj, PosPunct, PosOther:
		return true
	}
	return false
}

// IsContent reports whether p is one of the categories the significance
// extractor and theme expander operate on.
func (p PartOfSpeech) IsContent() bool {
	return p == PosNoun || p == PosVerb || p == PosAdj
}

// ContentCategories lists the categories used for theme extraction.
var ContentCategories = []PartOfSpeech{PosNoun, PosVerb, PosAdj}
