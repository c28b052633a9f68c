// validkit serves a declarative rule table as a JSON validation API with
// result caching and loop protection. Redis is optional: without REDIS_URL
// the service runs on its in-process store.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/validkit/httpapi"
	"github.com/dmitrymomot/validkit/pkg/config"
	"github.com/dmitrymomot/validkit/pkg/httpserver"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/ratelimiter"
	"github.com/dmitrymomot/validkit/pkg/redis"
	"github.com/dmitrymomot/validkit/pkg/registry"
	"github.com/dmitrymomot/validkit/pkg/requestid"
	"github.com/dmitrymomot/validkit/pkg/rules"
	"github.com/dmitrymomot/validkit/pkg/validation"
)

type appConfig struct {
	Environment      string        `env:"APP_ENV" envDefault:"development"`     // Environment selects logger presets: development, staging, production.
	RateLimitBurst   int           `env:"RATE_LIMIT_BURST" envDefault:"100"`    // RateLimitBurst is the per-client-IP request budget.
	RateLimitRefill  int           `env:"RATE_LIMIT_REFILL" envDefault:"100"`   // RateLimitRefill is how many requests are restored per interval.
	RateLimitWindow  time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1h"`    // RateLimitWindow is the refill interval.
	RateLimitEnabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // RateLimitEnabled toggles the rate limiting middleware.
}

const serviceName = "validkit"

func main() {
	ctx := context.Background()

	var appCfg appConfig
	config.MustLoad(&appCfg)
	var redisCfg redis.Config
	config.MustLoad(&redisCfg)
	var validationCfg validation.Config
	config.MustLoad(&validationCfg)
	var serverCfg httpserver.Config
	config.MustLoad(&serverCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	// Rule table and registry. Warm resolves every unit so incomplete specs
	// abort startup instead of surfacing per request.
	reg := registry.New(rules.Builtin())
	if err := reg.Warm(); err != nil {
		log.ErrorContext(ctx, "rule table verification failed", logger.Error(err))
		os.Exit(1)
	}

	// Backing store: Redis when configured, in-process otherwise.
	var (
		store        validation.Store
		redisClient  *goredis.Client
		healthChecks []func(context.Context) error
	)
	if redisCfg.IsConfigured() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			log.ErrorContext(ctx, "redis connection failed", logger.Error(err))
			os.Exit(1)
		}
		redisClient = client
		defer client.Close()

		store = validation.NewRedisStore(client)
		healthChecks = append(healthChecks, redis.Healthcheck(client))
		log.InfoContext(ctx, "using redis store")
	} else {
		memStore := validation.NewMemoryStore(
			validation.WithResultCapacity(validationCfg.ResultCapacity),
		)
		defer memStore.Close()

		store = memStore
		log.InfoContext(ctx, "using in-process store, results are not shared across instances")
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := validation.NewMetrics(promRegistry)

	svcOpts := append(validationCfg.Options(),
		validation.WithLogger(log),
		validation.WithMetrics(metrics),
	)
	svc := validation.New(reg, store, svcOpts...)

	routerOpts := []httpapi.RouterOption{
		httpapi.WithMetrics(promRegistry),
		httpapi.WithRouterLogger(log),
		httpapi.WithHealthChecks(healthChecks...),
	}
	if appCfg.RateLimitEnabled {
		limiter, err := newRateLimiter(appCfg, redisClient)
		if err != nil {
			log.ErrorContext(ctx, "rate limiter setup failed", logger.Error(err))
			os.Exit(1)
		}
		routerOpts = append(routerOpts, httpapi.WithRateLimiter(limiter))
	}

	router := httpapi.NewRouter(httpapi.NewHandler(reg, svc, log), routerOpts...)

	server := httpserver.NewFromConfig(serverCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server started", slog.String("addr", serverCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	if err := server.Run(ctx, router); err != nil {
		log.ErrorContext(ctx, "server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

// newRateLimiter shares limits through Redis when available so all instances
// count against the same per-IP budget.
func newRateLimiter(cfg appConfig, redisClient *goredis.Client) (ratelimiter.RateLimiter, error) {
	var store ratelimiter.Store
	if redisClient != nil {
		store = ratelimiter.NewRedisStore(redisClient)
	} else {
		store = ratelimiter.NewMemoryStore()
	}

	return ratelimiter.NewTokenBucket(store, ratelimiter.Config{
		Capacity:       cfg.RateLimitBurst,
		RefillRate:     cfg.RateLimitRefill,
		RefillInterval: cfg.RateLimitWindow,
	})
}
