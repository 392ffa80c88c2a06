package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"assurance/internal/platform/metrics"
	"assurance/pkg/platform/middleware/auth"
	"assurance/pkg/platform/middleware/metadata"
	"assurance/pkg/platform/middleware/ratelimit"
	request "assurance/pkg/platform/middleware/request"
)

// requestTimeout leaves room for a full orchestration run, four or five
// sequential commands each bounded by the client timeout.
const requestTimeout = 60 * time.Second

// RouterConfig collects what the gateway HTTP stack is built from.
type RouterConfig struct {
	Handler   *Handler
	Validator auth.JWTValidator
	Limiter   *ratelimit.Limiter
	Metrics   *metrics.Metrics
	// MetricsHandler is served unauthenticated on /metrics when set.
	MetricsHandler http.Handler
	Logger         *slog.Logger
}

// NewRouter assembles middleware and routes. Every business route requires
// a bearer token.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(cfg.Logger))
	r.Use(metadata.ClientMetadata)
	r.Use(chimw.Timeout(requestTimeout))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		if cfg.Limiter != nil {
			r.Use(cfg.Limiter.Middleware(cfg.Logger))
		}
		r.Use(auth.RequireAuth(cfg.Validator, cfg.Logger))
		cfg.Handler.Register(r)
	})
	return r
}
