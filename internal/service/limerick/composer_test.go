package limerick

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/inspoet/internal/domain"
)

type composerDeps struct {
	tagger  *taggerMock
	similar *similarityProviderMock
	rhymes  *rhymeProviderMock
	rnd     *seqRandom
}

func (d composerDeps) composer() *Composer {
	return NewComposer(
		NewExtractor(d.tagger),
		NewExpander(d.similar, d.tagger, 0),
		NewMorphology(d.tagger, suffixInflector()),
		NewRhymeResolver(d.rhymes),
		d.rnd,
	)
}

func rhymeTable(table map[string][]string) *rhymeProviderMock {
	return &rhymeProviderMock{
		RhymesFunc: func(ctx context.Context, word string) ([]string, error) {
			return table[word], nil
		},
	}
}

func TestCompose_FillsTemplate(t *testing.T) {
	t.Parallel()

	lex := map[string]domain.PartOfSpeech{
		"kitten": domain.PosNoun, "mouse": domain.PosNoun,
		"purr": domain.PosVerb, "chase": domain.PosVerb, "leap": domain.PosVerb,
		"fluffy": domain.PosAdj, "sleepy": domain.PosAdj,
	}
	for w, p := range catDogLexicon {
		lex[w] = p
	}

	deps := composerDeps{
		tagger: lexiconTagger(lex, nil),
		similar: &similarityProviderMock{
			MostSimilarFunc: func(ctx context.Context, word string, n int) ([]domain.Neighbor, error) {
				return neighboursOf("kitten", "purr", "fluffy", "mouse", "chase", "sleepy", "leap"), nil
			},
		},
		rhymes: rhymeTable(map[string][]string{
			"cat":    {"bat", "hat", "mat"},
			"kitten": {"mitten", "smitten"},
		}),
		// theme, adj1, adj2, adj3, noun, verb1, verb2, verb3, rhymeA, rhymeB, rhymeA
		rnd: &seqRandom{vals: []int{0, 0, 1, 0, 0, 0, 1, 2, 1, 0, 2}},
	}

	corpus := corpusOf("test",
		poem("First", "the cat sat on the mat"),
		poem("Second", "a dog ran in the fog"),
	)

	got, err := deps.composer().Compose(context.Background(), corpus)
	require.NoError(t, err)

	assert.Equal(t, "Something about cat", got.Title)
	assert.Equal(t, []string{
		"There once was a fluffy cat,",
		"who purrs by the hat.",
		"But then came in a sleepy kitten.",
		"They chased like a fluffy mitten.",
		"Finally, it leaped by the mat.",
	}, got.Lines)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 3, 3, 3, 3, 2, 3}, deps.rnd.requested())

	for _, call := range deps.similar.MostSimilarCalls() {
		assert.Equal(t, "cat", call.Word)
	}
	assert.Len(t, deps.similar.MostSimilarCalls(), 3)
}

func TestCompose_UnknownThemeUsesFallbackLists(t *testing.T) {
	t.Parallel()

	deps := composerDeps{
		tagger: lexiconTagger(map[string]domain.PartOfSpeech{"xyzzynotaword": domain.PosNoun}, nil),
		similar: &similarityProviderMock{
			MostSimilarFunc: func(ctx context.Context, word string, n int) ([]domain.Neighbor, error) {
				return nil, domain.ErrUnknownWord
			},
		},
		rhymes: rhymeTable(nil),
		rnd:    &seqRandom{},
	}

	got, err := deps.composer().Compose(context.Background(), corpusOf("x", poem("Odd", "xyzzynotaword")))
	require.NoError(t, err)

	assert.Equal(t, "Something about xyzzynotaword", got.Title)
	assert.Equal(t, []string{
		"There once was a mysterious xyzzynotaword,",
		"who gleams by the xyzzynotaword.",
		"But then came in a mysterious sea.",
		"They gleamed like a mysterious sea.",
		"Finally, it gleamed by the xyzzynotaword.",
	}, got.Lines)
}

func TestCompose_NoThemeCandidates(t *testing.T) {
	t.Parallel()

	deps := composerDeps{
		tagger: lexiconTagger(nil, nil),
		similar: &similarityProviderMock{
			MostSimilarFunc: func(ctx context.Context, word string, n int) ([]domain.Neighbor, error) {
				return nil, domain.ErrUnknownWord
			},
		},
		rhymes: rhymeTable(map[string][]string{"moon": {"june"}}),
		rnd:    &seqRandom{vals: []int{1}},
	}

	got, err := deps.composer().Compose(context.Background(), corpusOf("x", poem("Quiet", "and so on")))
	require.NoError(t, err)
	assert.Equal(t, "Something about moon", got.Title)
	assert.Equal(t, "who gleams by the june.", got.Lines[1])
	assert.Equal(t, 5, deps.rnd.requested()[0], "theme drawn from the noun fallback list")
}

func TestCompose_EveryLineFilled(t *testing.T) {
	t.Parallel()

	deps := composerDeps{
		tagger: lexiconTagger(catDogLexicon, nil),
		similar: &similarityProviderMock{
			MostSimilarFunc: func(ctx context.Context, word string, n int) ([]domain.Neighbor, error) {
				return neighboursOf("the", "on"), nil
			},
		},
		rhymes: rhymeTable(nil),
		rnd:    &seqRandom{vals: []int{1, 2, 1, 0, 4, 3, 2, 1}},
	}

	got, err := deps.composer().Compose(context.Background(), corpusOf("x",
		poem("First", "the cat sat on the mat"),
		poem("Second", "a dog ran in the fog"),
	))
	require.NoError(t, err)
	require.Len(t, got.Lines, 5)
	for i, line := range got.Lines {
		assert.NotContains(t, line, "  ", "line %d has an empty slot", i+1)
		assert.NotContains(t, line, " ,", "line %d has an empty slot", i+1)
	}
}

func TestCompose_ProviderErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("provider down")

	tests := []struct {
		name    string
		similar func(ctx context.Context, word string, n int) ([]domain.Neighbor, error)
		rhymes  func(ctx context.Context, word string) ([]string, error)
	}{
		{
			name: "similarity",
			similar: func(ctx context.Context, word string, n int) ([]domain.Neighbor, error) {
				return nil, boom
			},
			rhymes: func(ctx context.Context, word string) ([]string, error) { return nil, nil },
		},
		{
			name: "rhymes",
			similar: func(ctx context.Context, word string, n int) ([]domain.Neighbor, error) {
				return nil, domain.ErrUnknownWord
			},
			rhymes: func(ctx context.Context, word string) ([]string, error) { return nil, boom },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deps := composerDeps{
				tagger:  lexiconTagger(catDogLexicon, nil),
				similar: &similarityProviderMock{MostSimilarFunc: tt.similar},
				rhymes:  &rhymeProviderMock{RhymesFunc: tt.rhymes},
				rnd:     &seqRandom{},
			}
			_, err := deps.composer().Compose(context.Background(), corpusOf("x", poem("A", "the cat")))
			require.ErrorIs(t, err, boom)
		})
	}
}
