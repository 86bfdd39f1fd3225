package limerick

import (
	"context"
	"fmt"

	"github.com/heartmarshall/inspoet/internal/domain"
)

// History returns every saved limerick, oldest first.
func (s *Service) History(ctx context.Context) ([]domain.HistoryRecord, error) {
	records, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}
