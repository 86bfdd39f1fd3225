package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Limerick *LimerickHandler
	Health   *HealthHandler
	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
	// Middleware runs inside the router, after route matching.
	Middleware []func(http.Handler) http.Handler
}

// NewRouter builds the chi router for the whole HTTP surface.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(d.Middleware...)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Post("/generate_limerick", d.Limerick.Generate)
	r.Get("/show_saved", d.Limerick.ShowSaved)
	r.Get("/authors", d.Limerick.Authors)
	r.Get("/authors/{author}/themes", d.Limerick.Themes)

	if d.Metrics != nil && d.MetricsPath != "" {
		r.Method(http.MethodGet, d.MetricsPath, d.Metrics)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
