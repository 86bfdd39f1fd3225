package limerick

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// DefaultNeighbours is the number of related words requested per expansion.
const DefaultNeighbours = 13

// Origin tells where the words of a ThemeWordSet came from.
type Origin int

const (
	// OriginRelated means the words are POS-filtered neighbours of the seed.
	OriginRelated Origin = iota
	// OriginSeed means the seed was unknown and is returned unfiltered.
	OriginSeed
	// OriginFallback means no neighbour qualified and the static list was used.
	OriginFallback
)

func (o Origin) String() string {
	switch o {
	case OriginRelated:
		return "related"
	case OriginSeed:
		return "seed"
	case OriginFallback:
		return "fallback"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// ThemeWordSet is the non-empty, deduplicated candidate set for a seed and
// a part of speech.
type ThemeWordSet struct {
	Seed   string
	POS    domain.PartOfSpeech
	Words  []string
	Origin Origin
}

// Expander turns a theme into related words of a given part of speech.
type Expander struct {
	similar    similarityProvider
	tagger     tagger
	neighbours int
}

// NewExpander creates an Expander. neighbours <= 0 means DefaultNeighbours.
func NewExpander(similar similarityProvider, t tagger, neighbours int) *Expander {
	if neighbours <= 0 {
		neighbours = DefaultNeighbours
	}
	return &Expander{similar: similar, tagger: t, neighbours: neighbours}
}

// Expand queries up to n neighbours of seed (n <= 0 uses the configured
// count) and keeps those tagged as pos.
func (e *Expander) Expand(ctx context.Context, seed string, pos domain.PartOfSpeech, n int) (ThemeWordSet, error) {
	if n <= 0 {
		n = e.neighbours
	}
	set := ThemeWordSet{Seed: seed, POS: pos}

	neighbours, err := e.similar.MostSimilar(ctx, seed, n)
	if errors.Is(err, domain.ErrUnknownWord) || (err == nil && len(neighbours) == 0) {
		set.Words = []string{seed}
		set.Origin = OriginSeed
		return set, nil
	}
	if err != nil {
		return ThemeWordSet{}, fmt.Errorf("similar words for %q: %w", seed, err)
	}

	seen := make(map[string]bool, len(neighbours))
	for _, nb := range neighbours {
		word := strings.TrimSpace(nb.Word)
		if !domain.IsAlphaWord(word) || seen[word] {
			continue
		}
		tokens, err := e.tagger.Tag(ctx, word)
		if err != nil {
			return ThemeWordSet{}, fmt.Errorf("tag %q: %w", word, err)
		}
		if len(tokens) != 1 || tokens[0].POS != pos {
			continue
		}
		seen[word] = true
		set.Words = append(set.Words, word)
	}

	if len(set.Words) == 0 {
		set.Words = FallbackWords(pos)
		set.Origin = OriginFallback
		if len(set.Words) == 0 {
			set.Words = []string{seed}
			set.Origin = OriginSeed
		}
		return set, nil
	}

	set.Origin = OriginRelated
	return set, nil
}
