package limerick

import (
	"context"
	"fmt"

	"github.com/heartmarshall/inspoet/internal/domain"
)

type poemComposer interface {
	Compose(ctx context.Context, corpus *domain.Corpus) (*domain.Poem, error)
}

type poemScorer interface {
	Score(ctx context.Context, poem *domain.Poem) (float64, error)
}

// Candidate is one scored limerick.
type Candidate struct {
	Poem  *domain.Poem
	Score float64
}

// Selection is the outcome of one batch: the winner and every candidate in
// generation order.
type Selection struct {
	Best       Candidate
	Candidates []Candidate
}

// Selector generates k candidates and keeps the best scored one.
type Selector struct {
	composer poemComposer
	scorer   poemScorer
}

// NewSelector creates a Selector.
func NewSelector(c poemComposer, s poemScorer) *Selector {
	return &Selector{composer: c, scorer: s}
}

// Select runs k compositions. Ties keep the earliest candidate.
func (s *Selector) Select(ctx context.Context, corpus *domain.Corpus, k int) (*Selection, error) {
	if k < 1 {
		return nil, domain.NewValidationError("candidates", "must be at least 1")
	}

	sel := &Selection{Candidates: make([]Candidate, 0, k)}
	for i := 0; i < k; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		poem, err := s.composer.Compose(ctx, corpus)
		if err != nil {
			return nil, fmt.Errorf("compose candidate %d: %w", i+1, err)
		}
		score, err := s.scorer.Score(ctx, poem)
		if err != nil {
			return nil, fmt.Errorf("score candidate %d: %w", i+1, err)
		}

		c := Candidate{Poem: poem, Score: score}
		sel.Candidates = append(sel.Candidates, c)
		if i == 0 || c.Score > sel.Best.Score {
			sel.Best = c
		}
	}
	return sel, nil
}
