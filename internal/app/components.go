package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/inspoet/internal/adapter/cmu"
	"github.com/heartmarshall/inspoet/internal/adapter/corpus"
	"github.com/heartmarshall/inspoet/internal/adapter/embedding"
	"github.com/heartmarshall/inspoet/internal/adapter/history/file"
	"github.com/heartmarshall/inspoet/internal/adapter/inflect"
	"github.com/heartmarshall/inspoet/internal/adapter/languagetool"
	"github.com/heartmarshall/inspoet/internal/adapter/postgres"
	pghistory "github.com/heartmarshall/inspoet/internal/adapter/postgres/history"
	"github.com/heartmarshall/inspoet/internal/adapter/sqlite"
	"github.com/heartmarshall/inspoet/internal/adapter/tagger"
	"github.com/heartmarshall/inspoet/internal/adapter/vader"
	"github.com/heartmarshall/inspoet/internal/config"
	"github.com/heartmarshall/inspoet/internal/domain"
	"github.com/heartmarshall/inspoet/internal/metrics"
	"github.com/heartmarshall/inspoet/internal/service/limerick"
	"github.com/heartmarshall/inspoet/migrations"
)

// HistoryStore is what both the service and the health checks need from
// a history driver.
type HistoryStore interface {
	Append(ctx context.Context, rec domain.HistoryRecord) error
	List(ctx context.Context) ([]domain.HistoryRecord, error)
	Ping(ctx context.Context) error
}

// Options tune BuildComponents for the server or the CLI.
type Options struct {
	// Random overrides the shared random source.
	Random limerick.Random
	// DiscardHistory replaces the configured store with one that drops
	// every record.
	DiscardHistory bool
}

// Components is the wired dependency graph.
type Components struct {
	Service *limerick.Service
	History HistoryStore
	Metrics *metrics.Collector

	closers []func()
}

// Close releases pools and file handles in reverse order of creation.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// BuildComponents loads the lexical resources concurrently and wires the
// service.
func BuildComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Components, error) {
	c := &Components{}
	if cfg.Metrics.Enabled {
		c.Metrics = metrics.New(cfg.Metrics.Namespace)
	}

	start := time.Now()
	var (
		tg   *tagger.Tagger
		emb  *embedding.Table
		dict *cmu.Dictionary
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if tg, err = tagger.New(logger); err != nil {
			return fmt.Errorf("init tagger: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if emb, err = embedding.Open(cfg.Lexicon.EmbeddingsPath, logger); err != nil {
			return fmt.Errorf("init embeddings: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if dict, err = cmu.Open(cfg.Lexicon.CMUDictPath, logger); err != nil {
			return fmt.Errorf("init rhyme dictionary: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "lexicon loaded",
		slog.Int("embedding_words", emb.Len()),
		slog.Int("rhyme_groups", dict.Stats().RhymeGroups),
		slog.Duration("duration", time.Since(start)),
	)

	var grammar interface {
		Check(ctx context.Context, text string) ([]domain.GrammarIssue, error)
	} = languagetool.Noop{}
	if cfg.Grammar.Enabled {
		var hooks []languagetool.StateHook
		if c.Metrics != nil {
			hooks = append(hooks, c.Metrics.SetBreakerState)
		}
		grammar = languagetool.NewClient(cfg.Grammar, logger, hooks...)
	} else {
		logger.WarnContext(ctx, "grammar checking disabled, every poem scores 0 errors")
	}

	if opts.DiscardHistory {
		c.History = discardHistory{}
	} else {
		store, closeFn, err := openHistory(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		c.History = store
		c.closers = append(c.closers, closeFn)
	}

	svc := limerick.NewService(
		logger,
		corpus.NewLoader(cfg.Corpus.Dir, logger),
		c.History,
		limerick.Providers{
			Tagger:    tg,
			Similar:   emb,
			Rhymes:    dict,
			Inflector: inflect.New(),
			Grammar:   grammar,
			Sentiment: vader.New(),
		},
		opts.Random,
		cfg.Generation,
		cfg.Lexicon.Neighbours,
	)
	if c.Metrics != nil {
		svc.WithObserver(c.Metrics)
	}
	c.Service = svc

	return c, nil
}

func openHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger) (HistoryStore, func(), error) {
	switch cfg.History.Driver {
	case config.HistoryDriverFile:
		return file.New(cfg.History.FilePath, logger), func() {}, nil

	case config.HistoryDriverSQLite:
		store, err := sqlite.Open(ctx, cfg.History.SQLitePath, cfg.History.AutoMigrate, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite history: %w", err)
		}
		return store, func() { store.Close() }, nil

	case config.HistoryDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres history: %w", err)
		}
		if cfg.History.AutoMigrate {
			db := stdlib.OpenDBFromPool(pool)
			err := migrations.Run(ctx, db, goose.DialectPostgres, migrations.Postgres(), migrations.CommandUp, logger)
			db.Close()
			if err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("migrate postgres history: %w", err)
			}
		}
		return pghistory.New(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown history driver %q", cfg.History.Driver)
	}
}

// discardHistory drops every record. Used by the CLI with -save=false.
type discardHistory struct{}

func (discardHistory) Append(context.Context, domain.HistoryRecord) error { return nil }

func (discardHistory) List(context.Context) ([]domain.HistoryRecord, error) {
	return []domain.HistoryRecord{}, nil
}

func (discardHistory) Ping(context.Context) error { return nil }
