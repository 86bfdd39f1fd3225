package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// Supported migration commands.
const (
	CommandUp     = "up"
	CommandDown   = "down"
	CommandReset  = "reset"
	CommandStatus = "status"
)

// Run applies command to db with the migrations in fsys.
func Run(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS, command string, logger *slog.Logger) error {
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch command {
	case CommandUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		logResults(ctx, logger, results...)
	case CommandDown:
		result, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logResults(ctx, logger, result)
	case CommandReset:
		results, err := provider.DownTo(ctx, 0)
		if err != nil {
			return fmt.Errorf("goose reset: %w", err)
		}
		logResults(ctx, logger, results...)
	case CommandStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, st := range statuses {
			logger.InfoContext(ctx, "migration",
				slog.Int64("version", st.Source.Version),
				slog.String("path", st.Source.Path),
				slog.String("state", string(st.State)),
			)
		}
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	return nil
}

func logResults(ctx context.Context, logger *slog.Logger, results ...*goose.MigrationResult) {
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("direction", r.Direction),
			slog.Duration("duration", r.Duration),
		)
	}
}
