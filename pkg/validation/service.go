package validation

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/validkit/pkg/registry"
)

const (
	// DefaultCacheTTL is how long validation results stay cached.
	DefaultCacheTTL = time.Hour
	// DefaultLoopTTL bounds how long a stuck loop counter can block a
	// (symbol, value) pair before it expires.
	DefaultLoopTTL = time.Minute
	// DefaultMaxAttempts is the ceiling of concurrent validations for the
	// same (symbol, value) pair.
	DefaultMaxAttempts = 5
	// DefaultStoreTimeout bounds individual store calls so a slow backend
	// degrades to fail-open instead of blocking the caller.
	DefaultStoreTimeout = 50 * time.Millisecond
)

// Service executes validations with result caching and loop protection.
type Service struct {
	registry *registry.Registry
	store    Store
	log      *slog.Logger
	metrics  *Metrics

	cacheTTL     time.Duration
	loopTTL      time.Duration
	maxAttempts  int64
	storeTimeout time.Duration
}

// Option configures the validation service.
type Option func(*Service)

// WithCacheTTL overrides how long results stay cached.
func WithCacheTTL(d time.Duration) Option {
	if d <= 0 {
		panic("WithCacheTTL: duration must be > 0")
	}
	return func(s *Service) { s.cacheTTL = d }
}

// WithLoopTTL overrides the loop counter expiry window.
func WithLoopTTL(d time.Duration) Option {
	if d <= 0 {
		panic("WithLoopTTL: duration must be > 0")
	}
	return func(s *Service) { s.loopTTL = d }
}

// WithMaxAttempts overrides the concurrent attempt ceiling.
func WithMaxAttempts(n int64) Option {
	if n <= 0 {
		panic("WithMaxAttempts: ceiling must be > 0")
	}
	return func(s *Service) { s.maxAttempts = n }
}

// WithStoreTimeout overrides the per-call store timeout.
func WithStoreTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithStoreTimeout: duration must be > 0")
	}
	return func(s *Service) { s.storeTimeout = d }
}

// WithLogger supplies a logger for store failures and loop detections.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New creates a validation service over the given registry and store.
func New(reg *registry.Registry, store Store, opts ...Option) *Service {
	s := &Service{
		registry:     reg,
		store:        store,
		log:          slog.New(noopHandler{}),
		cacheTTL:     DefaultCacheTTL,
		loopTTL:      DefaultLoopTTL,
		maxAttempts:  DefaultMaxAttempts,
		storeTimeout: DefaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate runs the named rule against the value. Invalid input is a normal
// outcome carried in the result, never an error: unknown symbols, loop-guard
// rejections, and rule failures all come back as structured data.
func (s *Service) Validate(ctx context.Context, symbol, value string) Result {
	cacheKey := CacheKey(symbol, value)

	// Cache hits bypass loop accounting entirely.
	if res, ok := s.cachedResult(ctx, cacheKey); ok {
		s.metrics.recordCacheHit()
		return res
	}
	s.metrics.recordCacheMiss()

	loopKey := LoopKey(symbol, value)
	attempts, err := s.incrAttempts(ctx, loopKey)
	if err == nil {
		if attempts > s.maxAttempts {
			// Undo our own increment so rejected calls don't inflate the
			// in-flight count.
			s.decrAttempts(ctx, loopKey)
			s.metrics.recordLoopDetected()
			s.log.WarnContext(ctx, "validation loop detected",
				slog.String("symbol", symbol),
				slog.Int64("attempts", attempts))
			return loopDetectedResult()
		}
		defer s.decrAttempts(ctx, loopKey)
	}

	unit, err := s.registry.Resolve(symbol)
	if err != nil {
		return invalidResult(MsgValidatorNotFound)
	}

	res := s.execute(unit, value)
	s.metrics.recordValidation(symbol, res.Valid)

	s.writeCache(ctx, cacheKey, res)

	return res
}

// BatchValidate maps Validate over the values, preserving order. The batch
// is valid only when every individual result is.
func (s *Service) BatchValidate(ctx context.Context, symbol string, values []string) Batch {
	batch := Batch{
		Valid:   true,
		Results: make([]Result, 0, len(values)),
	}
	for _, v := range values {
		res := s.Validate(ctx, symbol, v)
		batch.Valid = batch.Valid && res.Valid
		batch.Results = append(batch.Results, res)
	}
	return batch
}

// Invalidate evicts the cached result for a (symbol, value) pair.
func (s *Service) Invalidate(ctx context.Context, symbol, value string) error {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.store.DeleteResult(ctx, CacheKey(symbol, value))
}

func (s *Service) execute(unit *registry.Unit, value string) Result {
	errs := unit.Validate(value)
	if len(errs) > 0 {
		return invalidResult(errs...)
	}

	res := validResult()
	if spec := unit.Spec(); spec.SchemaType != "" && spec.SchemaProperty != "" {
		res.JSONLD = map[string]any{
			"@context":          "https://schema.org",
			"@type":             spec.SchemaType,
			spec.SchemaProperty: value,
		}
	}
	return res
}

// cachedResult reads the cache fail-open: any store error is logged and
// treated as a miss.
func (s *Service) cachedResult(ctx context.Context, key string) (Result, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	res, ok, err := s.store.GetResult(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "result cache read failed, proceeding without cache", slog.Any("error", err))
		return Result{}, false
	}
	return res, ok
}

func (s *Service) writeCache(ctx context.Context, key string, res Result) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.store.SetResult(ctx, key, res, s.cacheTTL); err != nil {
		s.log.WarnContext(ctx, "result cache write failed", slog.Any("error", err))
	}
}

// incrAttempts increments the loop counter fail-open: on store failure the
// guard is treated as empty and the error is logged once here.
func (s *Service) incrAttempts(ctx context.Context, key string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	attempts, err := s.store.IncrAttempts(ctx, key, s.loopTTL)
	if err != nil {
		s.log.WarnContext(ctx, "loop guard unavailable, proceeding unguarded", slog.Any("error", err))
	}
	return attempts, err
}

func (s *Service) decrAttempts(ctx context.Context, key string) {
	// Detached from the caller's deadline so cleanup still runs when the
	// request context is already done.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.storeTimeout)
	defer cancel()

	if err := s.store.DecrAttempts(ctx, key); err != nil {
		s.log.WarnContext(ctx, "loop counter decrement failed", slog.Any("error", err))
	}
}

// noopHandler discards all logs; used when no logger is supplied.
type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (noopHandler) WithAttrs([]slog.Attr) slog.Handler        { return noopHandler{} }
func (noopHandler) WithGroup(string) slog.Handler             { return noopHandler{} }
