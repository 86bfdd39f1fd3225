// Package limerick implements limerick generation: theme extraction from an
// author's corpus, template filling under rhyme and agreement constraints,
// and selection of the best scored candidate.
package limerick

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/inspoet/internal/config"
	"github.com/heartmarshall/inspoet/internal/domain"
)

type tagger interface {
	Tag(ctx context.Context, text string) ([]domain.Token, error)
}

type similarityProvider interface {
	MostSimilar(ctx context.Context, word string, n int) ([]domain.Neighbor, error)
}

type rhymeProvider interface {
	Rhymes(ctx context.Context, word string) ([]string, error)
}

type inflector interface {
	Plural(word string) string
	Singular(word string) string
}

type grammarChecker interface {
	Check(ctx context.Context, text string) ([]domain.GrammarIssue, error)
}

type sentimentScorer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

type corpusLoader interface {
	Authors(ctx context.Context) ([]string, error)
	Load(ctx context.Context, author string) (*domain.Corpus, error)
}

type historyStore interface {
	Append(ctx context.Context, record domain.HistoryRecord) error
	List(ctx context.Context) ([]domain.HistoryRecord, error)
}

type generationObserver interface {
	ObserveGeneration(outcome string, candidates int, elapsed time.Duration)
}

// Providers bundles the language collaborators the pipeline consumes.
type Providers struct {
	Tagger    tagger
	Similar   similarityProvider
	Rhymes    rhymeProvider
	Inflector inflector
	Grammar   grammarChecker
	Sentiment sentimentScorer
}

// Service generates limericks for an author and keeps the history of results.
type Service struct {
	corpus    corpusLoader
	history   historyStore
	extractor *Extractor
	selector  *Selector
	rnd       Random
	observer  generationObserver
	cfg       config.GenerationConfig
	now       func() time.Time
	log       *slog.Logger
}

// DefaultCandidates is the batch size used when the configuration leaves it unset.
const DefaultCandidates = 3

// NewService wires the pipeline components around the given providers.
// neighbours is the number of related words requested per theme expansion.
// A non-positive cfg.Candidates falls back to DefaultCandidates.
func NewService(
	logger *slog.Logger,
	corpus corpusLoader,
	history historyStore,
	p Providers,
	rnd Random,
	cfg config.GenerationConfig,
	neighbours int,
) *Service {
	if rnd == nil {
		rnd = DefaultRandom()
	}
	if cfg.Candidates <= 0 {
		cfg.Candidates = DefaultCandidates
	}

	extractor := NewExtractor(p.Tagger)
	composer := NewComposer(
		extractor,
		NewExpander(p.Similar, p.Tagger, neighbours),
		NewMorphology(p.Tagger, p.Inflector),
		NewRhymeResolver(p.Rhymes),
		rnd,
	)
	selector := NewSelector(composer, NewScorer(p.Grammar, p.Sentiment))

	return &Service{
		corpus:    corpus,
		history:   history,
		extractor: extractor,
		selector:  selector,
		rnd:       rnd,
		observer:  nopObserver{},
		cfg:       cfg,
		now:       time.Now,
		log:       logger.With("service", "limerick"),
	}
}

// WithObserver registers a sink for generation outcomes (metrics).
func (s *Service) WithObserver(o generationObserver) *Service {
	if o != nil {
		s.observer = o
	}
	return s
}

type nopObserver struct{}

func (nopObserver) ObserveGeneration(string, int, time.Duration) {}
