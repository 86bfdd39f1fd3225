// Package corpus reads per-author poem collections laid out as
// <dir>/<author>/*.json, each file holding {"title": ..., "text": ...}.
package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// Loader reads corpora from a file system.
type Loader struct {
	fsys fs.FS
	log  *slog.Logger
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return NewLoaderFS(os.DirFS(dir), logger)
}

// NewLoaderFS creates a Loader over an arbitrary file system (for testing).
func NewLoaderFS(fsys fs.FS, logger *slog.Logger) *Loader {
	return &Loader{fsys: fsys, log: logger.With("adapter", "corpus")}
}

// Authors returns the sorted names of the author directories.
func (l *Loader) Authors(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("corpus: list authors: %w", err)
	}

	var authors []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			authors = append(authors, e.Name())
		}
	}
	sort.Strings(authors)
	return authors, nil
}

// Load reads every poem of author in lexical file name order. Files that
// cannot be decoded are skipped with a warning.
func (l *Loader) Load(ctx context.Context, author string) (*domain.Corpus, error) {
	if !validAuthorDir(author) {
		return nil, fmt.Errorf("corpus: author %q: %w", author, domain.ErrNotFound)
	}

	entries, err := fs.ReadDir(l.fsys, author)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("corpus: author %q: %w", author, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("corpus: read %q: %w", author, err)
	}

	corpus := &domain.Corpus{Author: author}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".json") {
			continue
		}

		p, err := l.readPoem(path.Join(author, e.Name()))
		if err != nil {
			l.log.WarnContext(ctx, "skipping poem file",
				slog.String("author", author),
				slog.String("file", e.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}
		corpus.Poems = append(corpus.Poems, p)
	}

	l.log.DebugContext(ctx, "corpus loaded",
		slog.String("author", author),
		slog.Int("poems", corpus.Len()),
	)
	return corpus, nil
}

func (l *Loader) readPoem(name string) (domain.Poem, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return domain.Poem{}, err
	}

	var raw poemFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Poem{}, fmt.Errorf("decode json: %w", err)
	}

	lines, err := raw.lines()
	if err != nil {
		return domain.Poem{}, err
	}
	return domain.Poem{Title: strings.TrimSpace(raw.Title), Lines: lines}, nil
}

// poemFile is the on-disk poem format. Text is either a list of lines or a
// single newline separated string.
type poemFile struct {
	Title string          `json:"title"`
	Text  json.RawMessage `json:"text"`
}

func (p poemFile) lines() ([]string, error) {
	if len(p.Text) == 0 || string(p.Text) == "null" {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(p.Text, &list); err == nil {
		return list, nil
	}

	var text string
	if err := json.Unmarshal(p.Text, &text); err != nil {
		return nil, fmt.Errorf("text must be a string or a list of strings")
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), nil
}

func validAuthorDir(author string) bool {
	if author == "" || author == "." || author == ".." {
		return false
	}
	return !strings.ContainsAny(author, `/\`) && fs.ValidPath(author)
}
