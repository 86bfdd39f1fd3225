// Package languagetool checks grammar through the LanguageTool HTTP API
// (POST /v2/check). Calls go through a circuit breaker; there are no retries.
package languagetool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/inspoet/internal/config"
	"github.com/heartmarshall/inspoet/internal/domain"
)

const breakerName = "languagetool"

// StateHook is notified of breaker transitions (for metrics).
type StateHook func(name string, state gobreaker.State)

// Client is a LanguageTool API client.
type Client struct {
	checkURL   string
	language   string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	hooks      []StateHook
	log        *slog.Logger
}

// NewClient creates a Client for the server at cfg.URL.
func NewClient(cfg config.GrammarConfig, logger *slog.Logger, hooks ...StateHook) *Client {
	c := &Client{
		checkURL:   strings.TrimRight(cfg.URL, "/") + "/v2/check",
		language:   cfg.Language,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		hooks:      hooks,
		log:        logger.With("adapter", "languagetool"),
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			for _, h := range c.hooks {
				h(name, to)
			}
		},
		IsSuccessful: isSuccessful,
	})

	for _, h := range hooks {
		h(breakerName, gobreaker.StateClosed)
	}
	return c
}

// Check returns the grammar issues found in text.
func (c *Client) Check(ctx context.Context, text string) ([]domain.GrammarIssue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.check(ctx, text)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("languagetool: %w", ctxErr)
		}
		c.log.ErrorContext(ctx, "languagetool request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("languagetool: %w: %w", domain.ErrProviderUnavailable, err)
	}
	return res.([]domain.GrammarIssue), nil
}

// State returns the current breaker state.
func (c *Client) State() gobreaker.State { return c.breaker.State() }

func (c *Client) check(ctx context.Context, text string) ([]domain.GrammarIssue, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.checkURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, body: truncate(string(body), 200)}
	}

	var decoded checkResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	issues := mapMatches(decoded.Matches)
	c.log.DebugContext(ctx, "languagetool response",
		slog.Int("status", resp.StatusCode),
		slog.Int("matches", len(issues)),
	)
	return issues, nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

// isSuccessful keeps client errors and caller cancellations from tripping
// the breaker; only server errors and transport failures count.
func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code < http.StatusInternalServerError
	}
	return false
}

func mapMatches(matches []apiMatch) []domain.GrammarIssue {
	out := make([]domain.GrammarIssue, 0, len(matches))
	for _, m := range matches {
		issue := domain.GrammarIssue{
			RuleID:  m.Rule.ID,
			Message: m.Message,
			Offset:  m.Offset,
			Length:  m.Length,
		}
		for _, r := range m.Replacements {
			issue.Suggestions = append(issue.Suggestions, r.Value)
		}
		out = append(out, issue)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Noop reports no issues. It stands in when grammar checking is disabled.
type Noop struct{}

// Check always returns no issues.
func (Noop) Check(context.Context, string) ([]domain.GrammarIssue, error) { return nil, nil }
