package limerick

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// Authors returns the sorted list of authors with a corpus.
func (s *Service) Authors(ctx context.Context) ([]string, error) {
	authors, err := s.corpus.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// matchAuthor looks requested up exactly, then case-insensitively.
func matchAuthor(authors []string, requested string) (string, bool) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return "", false
	}
	for _, a := range authors {
		if a == requested {
			return a, true
		}
	}
	for _, a := range authors {
		if strings.EqualFold(a, requested) {
			return a, true
		}
	}
	return "", false
}

// resolveAuthor returns the matching author or a random one. The bool
// reports whether the fallback was used.
func (s *Service) resolveAuthor(ctx context.Context, requested string) (string, bool, error) {
	authors, err := s.corpus.Authors(ctx)
	if err != nil {
		return "", false, fmt.Errorf("list authors: %w", err)
	}
	if len(authors) == 0 {
		return "", false, fmt.Errorf("no authors available: %w", domain.ErrNotFound)
	}

	if author, ok := matchAuthor(authors, requested); ok {
		return author, false, nil
	}

	author := pick(s.rnd, authors)
	if strings.TrimSpace(requested) != "" {
		s.log.WarnContext(ctx, "unknown author, using random one",
			slog.String("requested", requested),
			slog.String("author", author),
		)
	}
	return author, true, nil
}
