package limerick

import (
	"context"
	"fmt"
)

// RhymeResolver returns the rhyme set of a word. The word is passed to the
// provider as is; case and stress are not normalised here.
type RhymeResolver struct {
	provider rhymeProvider
}

// NewRhymeResolver creates a RhymeResolver.
func NewRhymeResolver(p rhymeProvider) *RhymeResolver {
	return &RhymeResolver{provider: p}
}

// RhymesFor returns the provider's rhymes, or {word} when there are none.
func (r *RhymeResolver) RhymesFor(ctx context.Context, word string) ([]string, error) {
	rhymes, err := r.provider.Rhymes(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("rhymes for %q: %w", word, err)
	}
	if len(rhymes) == 0 {
		return []string{word}, nil
	}
	return rhymes, nil
}
