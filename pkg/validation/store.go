package validation

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable indicates the backing store could not serve a request.
// The service treats it as fail-open: validation proceeds as if the cache
// and loop guard were empty.
var ErrStoreUnavailable = errors.New("validation store unavailable")

// Store is the persistence contract for cached results and loop-guard
// counters. Implementations must make IncrAttempts an atomic
// increment-and-fetch: a plain read-then-write admits a race where two
// concurrent calls both pass the attempt ceiling.
type Store interface {
	// GetResult returns the cached result for key, reporting whether a live
	// entry existed.
	GetResult(ctx context.Context, key string) (Result, bool, error)

	// SetResult caches a result under key for the given TTL.
	SetResult(ctx context.Context, key string, res Result, ttl time.Duration) error

	// DeleteResult evicts a cached result.
	DeleteResult(ctx context.Context, key string) error

	// IncrAttempts atomically increments the counter under key and returns
	// the new value. The TTL applies from the counter's creation.
	IncrAttempts(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// DecrAttempts decrements the counter under key, removing it at zero.
	DecrAttempts(ctx context.Context, key string) error
}
