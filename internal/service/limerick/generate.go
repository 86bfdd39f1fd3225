package limerick

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// Generation outcomes reported to the observer.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// GenerateResult is the persisted winner plus the whole scored batch.
type GenerateResult struct {
	Record     domain.HistoryRecord
	Composite  float64
	Candidates []Candidate
	// AuthorFallback is true when the requested author was empty or unknown.
	AuthorFallback bool
}

// Generate writes a limerick in the style of an author, picks the best of
// the candidate batch and saves it to the history.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	k := input.Candidates
	if k == 0 {
		k = s.cfg.Candidates
	}
	if s.cfg.MaxCandidates > 0 && k > s.cfg.MaxCandidates {
		return nil, domain.NewValidationError("candidates", fmt.Sprintf("max %d", s.cfg.MaxCandidates))
	}

	start := time.Now()
	result, err := s.generate(ctx, input.Author, k)
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	s.observer.ObserveGeneration(outcome, k, time.Since(start))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "limerick generated",
		slog.String("id", result.Record.ID.String()),
		slog.String("author", result.Record.Author),
		slog.String("title", result.Record.Title),
		slog.Int("candidates", k),
		slog.Int("grammar_score", result.Record.GrammarScore),
		slog.Float64("sentiment_score", result.Record.SentimentScore),
		slog.Float64("composite_score", result.Composite),
	)
	return result, nil
}

func (s *Service) generate(ctx context.Context, requested string, k int) (*GenerateResult, error) {
	author, fallback, err := s.resolveAuthor(ctx, requested)
	if err != nil {
		return nil, err
	}

	corpus, err := s.corpus.Load(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("load corpus of %q: %w", author, err)
	}

	sel, err := s.selector.Select(ctx, corpus, k)
	if err != nil {
		return nil, fmt.Errorf("select limerick: %w", err)
	}

	best := sel.Best.Poem
	record := domain.HistoryRecord{
		ID:             uuid.New(),
		Author:         author,
		Title:          best.Title,
		Lines:          best.Lines,
		GrammarScore:   best.GrammarErrors,
		SentimentScore: best.Sentiment,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.history.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("save limerick: %w", err)
	}

	return &GenerateResult{
		Record:         record,
		Composite:      sel.Best.Score,
		Candidates:     sel.Candidates,
		AuthorFallback: fallback,
	}, nil
}
