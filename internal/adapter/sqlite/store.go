// Package sqlite stores generated limericks in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/inspoet/internal/domain"
	"github.com/heartmarshall/inspoet/migrations"
)

const table = "limericks"

var columns = []string{"id", "author", "title", "lines", "grammar_score", "sentiment_score", "created_at"}

// Store is a SQLite backed history store.
type Store struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	log     *slog.Logger
}

// Open opens (or creates) the database at path. With migrate set the
// schema is brought up to date before returning.
func Open(ctx context.Context, path string, migrate bool, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One writer at a time; SQLite serialises writes anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	log := logger.With("adapter", "sqlite")
	if migrate {
		if err := migrations.Run(ctx, db, goose.DialectSQLite3, migrations.SQLite(), migrations.CommandUp, log); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Store{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question).RunWith(db),
		log:     log,
	}, nil
}

// DB exposes the underlying handle for migrations.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Append inserts one generated limerick.
func (s *Store) Append(ctx context.Context, rec domain.HistoryRecord) error {
	lines, err := json.Marshal(rec.Lines)
	if err != nil {
		return fmt.Errorf("encode lines: %w", err)
	}

	_, err = s.builder.
		Insert(table).
		Columns(columns...).
		Values(
			rec.ID.String(), rec.Author, rec.Title, string(lines),
			rec.GrammarScore, rec.SentimentScore, rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, rec.ID.String())
	}
	return nil
}

// List returns every saved limerick in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.HistoryRecord, error) {
	rows, err := s.builder.
		Select(columns...).
		From(table).
		OrderBy("rowid").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list limericks: %w", err)
	}
	defer rows.Close()

	records := []domain.HistoryRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list limericks: %w", err)
	}
	return records, nil
}

// Ping checks the database handle.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", err)
	}
	return nil
}

func scanRecord(rows *sql.Rows) (domain.HistoryRecord, error) {
	var (
		rec       domain.HistoryRecord
		id        string
		lines     string
		createdAt string
	)
	if err := rows.Scan(&id, &rec.Author, &rec.Title, &lines, &rec.GrammarScore, &rec.SentimentScore, &createdAt); err != nil {
		return rec, fmt.Errorf("scan limerick: %w", err)
	}

	var err error
	if rec.ID, err = uuid.Parse(id); err != nil {
		return rec, fmt.Errorf("limerick id %q: %w", id, err)
	}
	if err := json.Unmarshal([]byte(lines), &rec.Lines); err != nil {
		return rec, fmt.Errorf("limerick %s: decode lines: %w", id, err)
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return rec, fmt.Errorf("limerick %s: parse created_at: %w", id, err)
	}
	return rec, nil
}

func mapError(err error, key string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("limerick %s: %w", key, err)
	}

	var sqlErr *sqlitedrv.Error
	if errors.As(err, &sqlErr) {
		switch sqlErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("limerick %s: %w", key, domain.ErrAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("limerick %s: %w", key, domain.ErrValidation)
		}
	}
	return fmt.Errorf("limerick %s: %w", key, err)
}
