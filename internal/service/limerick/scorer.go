package limerick

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// Scorer annotates generated poems with grammar and sentiment scores.
// Both are computed line by line.
type Scorer struct {
	grammar   grammarChecker
	sentiment sentimentScorer
}

// NewScorer creates a Scorer.
func NewScorer(g grammarChecker, s sentimentScorer) *Scorer {
	return &Scorer{grammar: g, sentiment: s}
}

// EvaluateGrammar sums the grammar issues of every line and stores the
// total on the poem.
func (s *Scorer) EvaluateGrammar(ctx context.Context, poem *domain.Poem) (int, error) {
	total := 0
	for i, line := range poem.Lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		issues, err := s.grammar.Check(ctx, line)
		if err != nil {
			return 0, fmt.Errorf("check line %d: %w", i+1, err)
		}
		total += len(issues)
	}
	poem.GrammarErrors = total
	return total, nil
}

// EvaluateSentiment averages the nonzero line polarities and stores the
// result on the poem. A poem without any polar line scores exactly 0.
func (s *Scorer) EvaluateSentiment(ctx context.Context, poem *domain.Poem) (float64, error) {
	var sum float64
	n := 0
	for i, line := range poem.Lines {
		p, err := s.sentiment.Polarity(ctx, line)
		if err != nil {
			return 0, fmt.Errorf("polarity of line %d: %w", i+1, err)
		}
		if p == 0 {
			continue
		}
		sum += p
		n++
	}

	var score float64
	if n > 0 {
		score = clamp(sum/float64(n), -1, 1)
	}
	poem.Sentiment = score
	return score, nil
}

// Score evaluates both dimensions and returns the composite.
func (s *Scorer) Score(ctx context.Context, poem *domain.Poem) (float64, error) {
	errs, err := s.EvaluateGrammar(ctx, poem)
	if err != nil {
		return 0, fmt.Errorf("grammar: %w", err)
	}
	sentiment, err := s.EvaluateSentiment(ctx, poem)
	if err != nil {
		return 0, fmt.Errorf("sentiment: %w", err)
	}
	return Composite(sentiment, errs), nil
}

// Composite is sentiment / (errors + 1). For a positive sentiment more
// grammar errors always lower the score.
func Composite(sentiment float64, errors int) float64 {
	if errors < 0 {
		errors = 0
	}
	return sentiment / float64(errors+1)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
