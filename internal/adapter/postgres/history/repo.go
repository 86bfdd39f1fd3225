// Package history stores generated limericks in PostgreSQL.
package history

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/inspoet/internal/adapter/postgres"
	"github.com/heartmarshall/inspoet/internal/domain"
)

const table = "limericks"

var columns = []string{"id", "author", "title", "lines", "grammar_score", "sentiment_score", "created_at"}

type limerickRow struct {
	ID             uuid.UUID `db:"id"`
	Author         string    `db:"author"`
	Title          string    `db:"title"`
	Lines          []string  `db:"lines"`
	GrammarScore   int       `db:"grammar_score"`
	SentimentScore float64   `db:"sentiment_score"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r limerickRow) toDomain() domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:             r.ID,
		Author:         r.Author,
		Title:          r.Title,
		Lines:          r.Lines,
		GrammarScore:   r.GrammarScore,
		SentimentScore: r.SentimentScore,
		CreatedAt:      r.CreatedAt.UTC(),
	}
}

// Repo provides limerick history persistence backed by PostgreSQL.
type Repo struct {
	q       postgres.Querier
	builder sq.StatementBuilderType
}

// New creates a history repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		q:       q,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Append inserts one generated limerick.
func (r *Repo) Append(ctx context.Context, rec domain.HistoryRecord) error {
	query, args, err := r.builder.
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.Author, rec.Title, rec.Lines, rec.GrammarScore, rec.SentimentScore, rec.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "limerick", rec.ID.String())
	}
	return nil
}

// List returns every saved limerick in insertion order. Returns an empty
// slice (not nil) when nothing has been saved.
func (r *Repo) List(ctx context.Context) ([]domain.HistoryRecord, error) {
	query, args, err := r.builder.
		Select(columns...).
		From(table).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []limerickRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list limericks: %w", err)
	}

	records := make([]domain.HistoryRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}

// Ping checks the database connection.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.q.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
