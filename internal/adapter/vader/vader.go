// Package vader scores sentiment with the VADER lexicon and rules.
package vader

import (
	"context"
	"strings"

	"github.com/jonreiter/govader"
)

// Analyzer returns the VADER compound polarity of a text, in [-1, 1].
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// New loads the VADER lexicon.
func New() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity returns the compound score of text. Blank text is neutral.
func (a *Analyzer) Polarity(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	return a.sia.PolarityScores(text).Compound, nil
}
