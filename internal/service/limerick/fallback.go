package limerick

import "github.com/heartmarshall/inspoet/internal/domain"

// Static word lists substituted whenever dynamic expansion yields nothing usable.
var (
	fallbackNouns      = []string{"sea", "moon", "tea", "sky", "sun"}
	fallbackVerbs      = []string{"gleam", "seek", "reek", "made", "slayed"}
	fallbackAdjectives = []string{"mysterious", "colorful", "bright"}
)

// FallbackWords returns a copy of the static list for pos, or nil when the
// category has none.
func FallbackWords(pos domain.PartOfSpeech) []string {
	var src []string
	switch pos {
	case domain.PosNoun:
		src = fallbackNouns
	case domain.PosVerb:
		src = fallbackVerbs
	case domain.PosAdj:
		src = fallbackAdjectives
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
