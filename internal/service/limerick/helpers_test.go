package limerick

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/heartmarshall/inspoet/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// lexiconTagger returns a taggerMock that tags whitespace separated words by
// dictionary lookup. Unknown words are tagged X, lemmas default to the word.
func lexiconTagger(pos map[string]domain.PartOfSpeech, lemmas map[string]string) *taggerMock {
	return &taggerMock{
		TagFunc: func(ctx context.Context, text string) ([]domain.Token, error) {
			var out []domain.Token
			for _, f := range strings.Fields(text) {
				w := strings.ToLower(strings.Trim(f, ".,;:!?"))
				if w == "" {
					continue
				}
				p, ok := pos[w]
				if !ok {
					p = domain.PosOther
				}
				lemma := w
				if l, ok := lemmas[w]; ok {
					lemma = l
				}
				out = append(out, domain.Token{Text: w, POS: p, Lemma: lemma})
			}
			return out, nil
		},
	}
}

// seqRandom replays vals in order (modulo n) and records every requested n.
// Once vals is exhausted it returns 0.
type seqRandom struct {
	mu   sync.Mutex
	vals []int
	i    int
	ns   []int
}

func (r *seqRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := 0
	if r.i < len(r.vals) {
		v = r.vals[r.i]
	}
	r.i++
	r.ns = append(r.ns, n)
	return v % n
}

func (r *seqRandom) requested() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.ns...)
}

func poem(title string, lines ...string) domain.Poem {
	return domain.Poem{Title: title, Lines: lines}
}

func corpusOf(author string, poems ...domain.Poem) *domain.Corpus {
	return &domain.Corpus{Author: author, Poems: poems}
}
