// Package ops serves the health and metrics endpoints.
package ops

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds the router dependencies
type Config struct {
	// Metrics serves the Prometheus exposition
	Metrics http.Handler

	// Ready reports whether the bot can serve requests; nil means always ready
	Ready func() error
}

// NewRouter returns a router with /healthz, /readyz and /metrics
func NewRouter(cfg *Config) (http.Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Metrics == nil {
		return nil, errors.New("metrics handler cannot be nil")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if cfg.Ready != nil {
			if err := cfg.Ready(); err != nil {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Method(http.MethodGet, "/metrics", cfg.Metrics)

	return r, nil
}
