// Package file keeps the generation history as a JSON array in one file.
// Writes replace the file atomically (temp file + rename).
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// Store is a JSON file backed history store, safe for concurrent use
// within one process.
type Store struct {
	path string
	mu   sync.Mutex
	log  *slog.Logger
}

// New creates a Store writing to path. The file is created on first Append.
func New(path string, logger *slog.Logger) *Store {
	return &Store{path: path, log: logger.With("adapter", "history_file")}
}

// Append adds record to the end of the history.
func (s *Store) Append(ctx context.Context, record domain.HistoryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(ctx)
	if err != nil {
		return err
	}
	records = append(records, record)

	if err := s.write(records); err != nil {
		return fmt.Errorf("history: write %s: %w", s.path, err)
	}
	return nil
}

// List returns the history, oldest first. A missing file is an empty
// history; so is a corrupt one.
func (s *Store) List(ctx context.Context) ([]domain.HistoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(ctx)
}

// Ping checks that the directory holding the history file is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("history: %s is not a directory", filepath.Dir(s.path))
	}
	return nil
}

func (s *Store) read(ctx context.Context) ([]domain.HistoryRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.HistoryRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: read %s: %w", s.path, err)
	}

	var records []domain.HistoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.WarnContext(ctx, "history file is malformed, treating as empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return []domain.HistoryRecord{}, nil
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	return records, nil
}

func (s *Store) write(records []domain.HistoryRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}
