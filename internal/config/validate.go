package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// maxCandidatesCeiling bounds generation.max_candidates; every candidate costs
// one full pipeline run plus grammar checks.
const maxCandidatesCeiling = 50

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.History.validate(c.Database); err != nil {
		return fmt.Errorf("history: %w", err)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if c.Lexicon.Neighbours < 1 {
		return fmt.Errorf("lexicon.neighbours must be >= 1 (got %d)", c.Lexicon.Neighbours)
	}

	if c.Grammar.Enabled {
		if err := c.Grammar.validate(); err != nil {
			return fmt.Errorf("grammar: %w", err)
		}
	}

	if strings.TrimSpace(c.Corpus.Dir) == "" {
		return fmt.Errorf("corpus.dir is required")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (h *HistoryConfig) validate(db DatabaseConfig) error {
	h.Driver = strings.ToLower(strings.TrimSpace(h.Driver))
	switch h.Driver {
	case HistoryDriverFile:
		if h.FilePath == "" {
			return fmt.Errorf("file_path is required for the file driver")
		}
	case HistoryDriverSQLite:
		if h.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite driver")
		}
	case HistoryDriverPostgres:
		if db.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want file, sqlite or postgres)", h.Driver)
	}
	return nil
}

func (g GenerationConfig) validate() error {
	if g.MaxCandidates < 1 || g.MaxCandidates > maxCandidatesCeiling {
		return fmt.Errorf("max_candidates must be in [1, %d] (got %d)", maxCandidatesCeiling, g.MaxCandidates)
	}
	if g.Candidates < 1 || g.Candidates > g.MaxCandidates {
		return fmt.Errorf("candidates must be in [1, %d] (got %d)", g.MaxCandidates, g.Candidates)
	}
	return nil
}

func (g GrammarConfig) validate() error {
	u, err := url.Parse(g.URL)
	if err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("url must be absolute (got %q)", g.URL)
	}
	if g.Language == "" {
		return fmt.Errorf("language is required")
	}
	if g.BreakerFailureRatio <= 0 || g.BreakerFailureRatio > 1 {
		return fmt.Errorf("breaker_failure_ratio must be in (0, 1] (got %v)", g.BreakerFailureRatio)
	}
	return nil
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
