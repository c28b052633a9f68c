// Package ratelimiter throttles API clients with a token bucket. Buckets
// live in a Store so limits can be enforced per process (MemoryStore) or
// shared across replicas (RedisStore). The HTTP middleware keys buckets on
// whatever KeyFunc the caller supplies, typically the client IP.
package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidConfig reports a bucket configuration that cannot work.
	ErrInvalidConfig = errors.New("ratelimiter: invalid config")
	// ErrInvalidTokenCount reports a non-positive token request.
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")
	// ErrStoreUnavailable wraps backend failures so callers can fail open.
	ErrStoreUnavailable = errors.New("ratelimiter: store unavailable")
)

// Config shapes a token bucket: Capacity is the burst ceiling,
// RefillRate tokens are restored every RefillInterval.
type Config struct {
	Capacity       int
	RefillRate     int
	RefillInterval time.Duration
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result reports the outcome of one bucket check.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left after this check; negative means denied
	ResetAt   time.Time // when the next refill lands
}

// Allowed reports whether the checked request may proceed.
func (r *Result) Allowed() bool { return r.Remaining >= 0 }

// RetryAfter returns how long a denied caller should wait, 0 when allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Store holds bucket state. ConsumeTokens must apply refill and consumption
// as one atomic step; a negative remaining count means the request is denied.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// RateLimiter is the surface the middleware needs.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
	AllowN(ctx context.Context, key string, n int) (*Result, error)
}

// TokenBucket enforces one Config against a Store.
type TokenBucket struct {
	store  Store
	config Config
}

func NewTokenBucket(store Store, config Config) (*TokenBucket, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &TokenBucket{store: store, config: config}, nil
}

// NewBucket is a shorthand for NewTokenBucket.
func NewBucket(store Store, config Config) (*TokenBucket, error) {
	return NewTokenBucket(store, config)
}

func (tb *TokenBucket) Allow(ctx context.Context, key string) (*Result, error) {
	return tb.AllowN(ctx, key, 1)
}

func (tb *TokenBucket) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTokenCount, n)
	}
	return tb.consume(ctx, key, n)
}

// Status reports the bucket state without spending a token.
func (tb *TokenBucket) Status(ctx context.Context, key string) (*Result, error) {
	return tb.consume(ctx, key, 0)
}

// Reset forgets all state for key, refilling its bucket on next use.
func (tb *TokenBucket) Reset(ctx context.Context, key string) error {
	return tb.store.Reset(ctx, key)
}

func (tb *TokenBucket) consume(ctx context.Context, key string, n int) (*Result, error) {
	remaining, resetAt, err := tb.store.ConsumeTokens(ctx, key, n, tb.config)
	if err != nil {
		return nil, err
	}
	return &Result{
		Limit:     tb.config.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
