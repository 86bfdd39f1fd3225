package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// SeedLimerick inserts one limerick by author and returns it.
func SeedLimerick(t *testing.T, pool *pgxpool.Pool, author string) domain.HistoryRecord {
	t.Helper()

	rec := domain.HistoryRecord{
		ID:             uuid.New(),
		Author:         author,
		Title:          "Something about sea",
		Lines:          []string{"There once was a bright sea,", "who gleams by the tea."},
		GrammarScore:   1,
		SentimentScore: 0.3,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO limericks (id, author, title, lines, grammar_score, sentiment_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.Author, rec.Title, rec.Lines, rec.GrammarScore, rec.SentimentScore, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed limerick: %v", err)
	}
	return rec
}
