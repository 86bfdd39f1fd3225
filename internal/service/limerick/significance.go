package limerick

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/e-gun/nlp"
	"gonum.org/v1/gonum/mat"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// NoTerm marks a poem without any qualifying token for a category.
const NoTerm = "None"

// minTermLength is the shortest token kept as a term.
const minTermLength = 2

// SignificantTerm is the highest weighted term of one poem for one category.
type SignificantTerm struct {
	Title string
	Term  string
	Score float64
}

// Significance holds one SignificantTerm per poem, in corpus order.
type Significance []SignificantTerm

// ByTitle returns the title to term mapping.
func (s Significance) ByTitle() map[string]string {
	m := make(map[string]string, len(s))
	for _, t := range s {
		m[t.Title] = t.Term
	}
	return m
}

// Terms returns the terms usable as a theme: alphabetic single words,
// excluding NoTerm.
func (s Significance) Terms() []string {
	var out []string
	for _, t := range s {
		if t.Term == NoTerm || !domain.IsAlphaWord(t.Term) {
			continue
		}
		out = append(out, t.Term)
	}
	return out
}

// Extractor picks the most significant term of each poem by TF-IDF.
type Extractor struct {
	tagger tagger
}

// NewExtractor creates an Extractor backed by the given tagger.
func NewExtractor(t tagger) *Extractor {
	return &Extractor{tagger: t}
}

// Extract returns exactly one entry per poem for the given category.
func (e *Extractor) Extract(ctx context.Context, corpus *domain.Corpus, pos domain.PartOfSpeech) (Significance, error) {
	if corpus.Len() == 0 {
		return Significance{}, nil
	}

	titles := uniqueTitles(corpus.Poems)
	docs := make([][]string, len(corpus.Poems))

	for i, poem := range corpus.Poems {
		for _, line := range poem.Lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			tokens, err := e.tagger.Tag(ctx, line)
			if err != nil {
				return nil, fmt.Errorf("tag line of %q: %w", poem.Title, err)
			}
			for _, tok := range tokens {
				if tok.POS != pos {
					continue
				}
				docs[i] = append(docs[i], domain.WordParts(tok.Text, minTermLength)...)
			}
		}
	}

	terms, scores, err := topTerms(docs)
	if err != nil {
		return nil, fmt.Errorf("weight %s terms: %w", pos, err)
	}

	out := make(Significance, len(docs))
	for i := range docs {
		out[i] = SignificantTerm{Title: titles[i], Term: terms[i], Score: scores[i]}
	}
	return out, nil
}

// topTerms returns the best TF-IDF term of every document, or NoTerm for
// documents without tokens. idf is smoothed: ln((1+n)/(1+df)) + 1, and
// each document vector is L2-normalised.
func topTerms(docs [][]string) ([]string, []float64, error) {
	terms := make([]string, len(docs))
	scores := make([]float64, len(docs))
	for i := range terms {
		terms[i] = NoTerm
	}

	total := 0
	joined := make([]string, len(docs))
	for i, d := range docs {
		total += len(d)
		joined[i] = strings.Join(d, " ")
	}
	if total == 0 {
		return terms, scores, nil
	}

	vectoriser := nlp.NewCountVectoriser()
	counts, err := vectoriser.FitTransform(joined...)
	if err != nil {
		return nil, nil, err
	}

	vocab := make([]string, len(vectoriser.Vocabulary))
	for term, row := range vectoriser.Vocabulary {
		vocab[row] = term
	}

	rows, cols := counts.Dims()
	n := float64(cols)
	idf := make([]float64, rows)
	for r := 0; r < rows; r++ {
		df := 0
		for c := 0; c < cols; c++ {
			if counts.At(r, c) > 0 {
				df++
			}
		}
		idf[r] = math.Log((1+n)/(1+float64(df))) + 1
	}

	var weighted mat.Dense
	weighted.Apply(func(r, _ int, v float64) float64 { return v * idf[r] }, counts)

	for c := 0; c < cols; c++ {
		col := weighted.ColView(c)
		var best float64
		bestRow := -1
		for r := 0; r < rows; r++ {
			w := col.AtVec(r)
			if w == 0 {
				continue
			}
			if bestRow < 0 || w > best || (w == best && vocab[r] < vocab[bestRow]) {
				best, bestRow = w, r
			}
		}
		if bestRow < 0 {
			continue
		}
		terms[c] = vocab[bestRow]
		scores[c] = best / mat.Norm(col, 2)
	}
	return terms, scores, nil
}

// uniqueTitles disambiguates repeated titles with " #2", " #3" suffixes.
func uniqueTitles(poems []domain.Poem) []string {
	seen := make(map[string]int, len(poems))
	used := make(map[string]bool, len(poems))
	out := make([]string, len(poems))
	for i, p := range poems {
		base := strings.TrimSpace(p.Title)
		if base == "" {
			base = "untitled"
		}
		title := base
		for used[title] {
			seen[base]++
			title = fmt.Sprintf("%s #%d", base, seen[base]+1)
		}
		used[title] = true
		out[i] = title
	}
	return out
}
