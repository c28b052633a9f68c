package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/validkit/pkg/clientip"
	"github.com/dmitrymomot/validkit/pkg/httpserver"
	"github.com/dmitrymomot/validkit/pkg/ratelimiter"
	"github.com/dmitrymomot/validkit/pkg/requestid"
)

// RouterOption configures optional router features.
type RouterOption func(*routerConfig)

type routerConfig struct {
	limiter      ratelimiter.RateLimiter
	gatherer     prometheus.Gatherer
	healthChecks []func(context.Context) error
	log          *slog.Logger
}

// WithRateLimiter enables per-client-IP rate limiting on all routes.
func WithRateLimiter(limiter ratelimiter.RateLimiter) RouterOption {
	return func(c *routerConfig) { c.limiter = limiter }
}

// WithMetrics serves Prometheus exposition from the given gatherer at /metrics.
func WithMetrics(gatherer prometheus.Gatherer) RouterOption {
	return func(c *routerConfig) { c.gatherer = gatherer }
}

// WithHealthChecks registers readiness probes for /health. Without any the
// endpoint is a plain liveness probe.
func WithHealthChecks(checks ...func(context.Context) error) RouterOption {
	return func(c *routerConfig) { c.healthChecks = append(c.healthChecks, checks...) }
}

// WithRouterLogger supplies a logger for health-check failures.
func WithRouterLogger(log *slog.Logger) RouterOption {
	return func(c *routerConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// NewRouter assembles the API routes with request-ID and CORS middleware,
// plus rate limiting, /metrics and /health when configured.
func NewRouter(h *Handler, opts ...RouterOption) http.Handler {
	cfg := &routerConfig{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(CORS)
	if cfg.limiter != nil {
		r.Use(ratelimiter.Middleware(cfg.limiter, clientip.GetIP))
	}

	r.Route("/validators", func(r chi.Router) {
		r.Get("/", h.listValidators)
		r.Get("/fields", h.listFields)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getValidator)
			r.Get("/examples", h.getExamples)
			r.Get("/regex", h.getRegex)
			r.Get("/jsonld", h.getJSONLD)
			r.Post("/validate", h.validate)
			r.Post("/batch_validate", h.batchValidate)
		})
	})

	r.Get("/health", httpserver.HealthCheckHandler(context.Background(), cfg.log, cfg.healthChecks...))

	if cfg.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
