// Command migrate applies the embedded goose migrations of a history driver.
//
// Flags:
//
//	-driver   postgres | sqlite (default: history.driver)
//	-command  up | down | reset | status (default: up)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/heartmarshall/inspoet/internal/app"
	"github.com/heartmarshall/inspoet/internal/config"
	"github.com/heartmarshall/inspoet/migrations"
)

func main() {
	driverFlag := flag.String("driver", "", "postgres or sqlite (default: history.driver)")
	commandFlag := flag.String("command", migrations.CommandUp, "up, down, reset or status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	driver := *driverFlag
	if driver == "" {
		driver = cfg.History.Driver
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := migrate(ctx, cfg, driver, *commandFlag, logger); err != nil {
		logger.Error("migrate", slog.String("driver", driver), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func migrate(ctx context.Context, cfg *config.Config, driver, command string, logger *slog.Logger) error {
	var (
		sqlDriver, dsn string
		dialect        goose.Dialect
		fsys           fs.FS
	)
	switch driver {
	case config.HistoryDriverPostgres:
		sqlDriver, dsn, dialect, fsys = "pgx", cfg.Database.DSN, goose.DialectPostgres, migrations.Postgres()
	case config.HistoryDriverSQLite:
		sqlDriver, dsn, dialect, fsys = "sqlite", cfg.History.SQLitePath, goose.DialectSQLite3, migrations.SQLite()
	default:
		return fmt.Errorf("driver %q has no migrations", driver)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	return migrations.Run(ctx, db, dialect, fsys, command, logger)
}
