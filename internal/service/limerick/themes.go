package limerick

import (
	"context"
	"fmt"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// PoemThemes is the significant term of each content category of one poem.
type PoemThemes struct {
	Title     string `json:"title"`
	Noun      string `json:"noun"`
	Verb      string `json:"verb"`
	Adjective string `json:"adjective"`
}

// Themes extracts the significant noun, verb and adjective of every poem of
// author. Unlike generation, an unknown author is an error.
func (s *Service) Themes(ctx context.Context, author string) ([]PoemThemes, error) {
	if errs := validateAuthor(author); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	authors, err := s.corpus.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	name, ok := matchAuthor(authors, author)
	if !ok {
		return nil, fmt.Errorf("author %q: %w", author, domain.ErrNotFound)
	}

	corpus, err := s.corpus.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	byPOS := make(map[domain.PartOfSpeech]Significance, len(domain.ContentCategories))
	for _, pos := range domain.ContentCategories {
		sig, err := s.extractor.Extract(ctx, corpus, pos)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", pos, err)
		}
		byPOS[pos] = sig
	}

	out := make([]PoemThemes, corpus.Len())
	for i := range out {
		out[i] = PoemThemes{
			Title:     byPOS[domain.PosNoun][i].Title,
			Noun:      byPOS[domain.PosNoun][i].Term,
			Verb:      byPOS[domain.PosVerb][i].Term,
			Adjective: byPOS[domain.PosAdj][i].Term,
		}
	}
	return out, nil
}
