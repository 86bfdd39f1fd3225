// Package embedding answers nearest-neighbour queries over a word vector
// table in GloVe text format ("word v1 v2 ... vn", one word per line).
package embedding

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/search"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// Table is an in-memory embedding table. It is read-only after loading.
type Table struct {
	searcher *search.Searcher
	vocab    map[string]struct{}
	dim      int
}

// Open loads a table from a file.
func Open(path string, logger *slog.Logger) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open embeddings: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logger.With("adapter", "embedding").Info("embeddings loaded",
		slog.String("path", path),
		slog.Int("words", len(t.vocab)),
		slog.Int("dim", t.dim),
	)
	return t, nil
}

// Load parses a table from r.
func Load(r io.Reader) (*Table, error) {
	embs, err := embedding.Load(r)
	if err != nil {
		return nil, fmt.Errorf("parse embeddings: %w", err)
	}
	if len(embs) == 0 {
		return nil, fmt.Errorf("parse embeddings: table is empty")
	}

	searcher, err := search.New(embs...)
	if err != nil {
		return nil, fmt.Errorf("build searcher: %w", err)
	}

	vocab := make(map[string]struct{}, len(embs))
	for _, e := range embs {
		vocab[e.Word] = struct{}{}
	}

	return &Table{searcher: searcher, vocab: vocab, dim: embs[0].Dim}, nil
}

// Len returns the vocabulary size.
func (t *Table) Len() int { return len(t.vocab) }

// MostSimilar returns up to n words closest to word by cosine similarity,
// most similar first. Words with zero or negative similarity are never
// returned, so the result may be shorter than n even in a large table.
// Words outside the table yield domain.ErrUnknownWord.
func (t *Table) MostSimilar(ctx context.Context, word string, n int) ([]domain.Neighbor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, ok := t.lookup(word)
	if !ok {
		return nil, fmt.Errorf("%q: %w", word, domain.ErrUnknownWord)
	}

	if max := len(t.vocab) - 1; n > max {
		n = max
	}
	if n < 1 {
		return nil, nil
	}

	neighbours, err := t.searcher.SearchInternal(key, n)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", key, err)
	}

	out := make([]domain.Neighbor, 0, len(neighbours))
	for _, nb := range neighbours {
		if nb.Similarity <= 0 {
			continue
		}
		out = append(out, domain.Neighbor{Word: nb.Word, Similarity: nb.Similarity})
	}
	return out, nil
}

func (t *Table) lookup(word string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(word))
	if _, ok := t.vocab[lower]; ok {
		return lower, true
	}
	folded := domain.NormalizeWord(word)
	if _, ok := t.vocab[folded]; ok {
		return folded, true
	}
	return "", false
}
