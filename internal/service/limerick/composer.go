package limerick

import (
	"context"
	"fmt"

	"github.com/heartmarshall/inspoet/internal/domain"
)

const (
	lineOpening = "There once was a %s %s,"
	lineSecond  = "who %s by the %s."
	lineThird   = "But then came in a %s %s."
	lineFourth  = "They %s like a %s %s."
	lineClosing = "Finally, it %s by the %s."

	titleFormat = "Something about %s"
)

// Composer fills the AABBA limerick template from an author's corpus.
// It keeps no state between calls.
type Composer struct {
	extractor  *Extractor
	expander   *Expander
	morphology *Morphology
	rhymes     *RhymeResolver
	rnd        Random
}

// NewComposer creates a Composer.
func NewComposer(ex *Extractor, exp *Expander, m *Morphology, r *RhymeResolver, rnd Random) *Composer {
	return &Composer{extractor: ex, expander: exp, morphology: m, rhymes: r, rnd: rnd}
}

// Compose produces one limerick. Sparse vocabulary never fails the run;
// provider errors do.
func (c *Composer) Compose(ctx context.Context, corpus *domain.Corpus) (*domain.Poem, error) {
	nouns, err := c.extractor.Extract(ctx, corpus, domain.PosNoun)
	if err != nil {
		return nil, fmt.Errorf("extract themes: %w", err)
	}

	candidates := nouns.Terms()
	if len(candidates) == 0 {
		candidates = FallbackWords(domain.PosNoun)
	}
	theme := pick(c.rnd, candidates)

	nounSet, err := c.words(ctx, theme, domain.PosNoun)
	if err != nil {
		return nil, err
	}
	verbSet, err := c.words(ctx, theme, domain.PosVerb)
	if err != nil {
		return nil, err
	}
	adjSet, err := c.words(ctx, theme, domain.PosAdj)
	if err != nil {
		return nil, err
	}

	adj1 := pick(c.rnd, adjSet)
	adj2 := pick(c.rnd, adjSet)
	adj3 := pick(c.rnd, adjSet)
	noun := pick(c.rnd, nounSet)
	verb1 := pick(c.rnd, verbSet)
	verb2 := pick(c.rnd, verbSet)
	verb3 := pick(c.rnd, verbSet)

	noun = c.morphology.HandlePlurality(noun, false)

	rhymesA, err := c.rhymes.RhymesFor(ctx, theme)
	if err != nil {
		return nil, err
	}
	rhymesB, err := c.rhymes.RhymesFor(ctx, noun)
	if err != nil {
		return nil, err
	}

	if verb1, err = c.morphology.Conjugate(ctx, verb1, TensePresent, ThirdSingular); err != nil {
		return nil, fmt.Errorf("conjugate: %w", err)
	}
	if verb2, err = c.morphology.Conjugate(ctx, verb2, TensePast, ThirdPlural); err != nil {
		return nil, fmt.Errorf("conjugate: %w", err)
	}
	if verb3, err = c.morphology.Conjugate(ctx, verb3, TensePast, ThirdSingular); err != nil {
		return nil, fmt.Errorf("conjugate: %w", err)
	}

	lines := []string{
		fmt.Sprintf(lineOpening, adj1, theme),
		fmt.Sprintf(lineSecond, verb1, pick(c.rnd, rhymesA)),
		fmt.Sprintf(lineThird, adj2, noun),
		fmt.Sprintf(lineFourth, verb2, adj3, pick(c.rnd, rhymesB)),
		fmt.Sprintf(lineClosing, verb3, pick(c.rnd, rhymesA)),
	}

	return &domain.Poem{
		Title: fmt.Sprintf(titleFormat, theme),
		Lines: lines,
	}, nil
}

// words expands theme for pos, replacing an unfiltered seed singleton with
// the static list of the category.
func (c *Composer) words(ctx context.Context, theme string, pos domain.PartOfSpeech) ([]string, error) {
	set, err := c.expander.Expand(ctx, theme, pos, 0)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", pos, err)
	}
	if set.Origin == OriginSeed || len(set.Words) == 0 {
		if fb := FallbackWords(pos); len(fb) > 0 {
			return fb, nil
		}
	}
	return set.Words, nil
}
