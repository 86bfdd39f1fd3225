package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/inspoet/internal/config"
	"github.com/heartmarshall/inspoet/internal/transport/middleware"
	"github.com/heartmarshall/inspoet/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// dependency graph and serves HTTP until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("history_driver", cfg.History.Driver),
	)

	comps, err := BuildComponents(ctx, cfg, logger, Options{})
	if err != nil {
		return err
	}
	defer comps.Close()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(cfg, comps, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler assembles the middleware chain around the router:
// RequestID, Logger, Recovery, CORS, then the router with metrics inside.
func NewHandler(cfg *config.Config, comps *Components, logger *slog.Logger) http.Handler {
	deps := rest.RouterDeps{
		Limerick: rest.NewLimerickHandler(comps.Service, logger),
		Health:   rest.NewHealthHandler(comps.History, BuildVersion()),
	}
	if comps.Metrics != nil {
		deps.Metrics = comps.Metrics.Handler()
		deps.MetricsPath = cfg.Metrics.Path
		deps.Middleware = append(deps.Middleware, middleware.Metrics(comps.Metrics))
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(rest.NewRouter(deps))
}
