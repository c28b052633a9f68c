package validation

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/validkit/pkg/cache"
)

type counter struct {
	attempts  int64
	expiresAt time.Time
}

// MemoryStore implements Store in process memory. Results live in a bounded
// TTL cache; loop counters in a mutex-guarded map swept periodically.
// Suitable for tests and single-process deployments.
type MemoryStore struct {
	results *cache.TTLCache[string, Result]

	mu       sync.Mutex
	counters map[string]*counter

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithResultCapacity bounds the number of cached results.
func WithResultCapacity(capacity int) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.results = cache.New[string, Result](capacity)
	}
}

// WithCleanupInterval sets how often expired loop counters are swept.
// Set to 0 to disable the sweeper.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		results:         cache.New[string, Result](4096),
		counters:        make(map[string]*counter),
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

func (ms *MemoryStore) GetResult(_ context.Context, key string) (Result, bool, error) {
	res, ok := ms.results.Get(key)
	return res, ok, nil
}

func (ms *MemoryStore) SetResult(_ context.Context, key string, res Result, ttl time.Duration) error {
	ms.results.Put(key, res, ttl)
	return nil
}

func (ms *MemoryStore) DeleteResult(_ context.Context, key string) error {
	ms.results.Remove(key)
	return nil
}

// IncrAttempts increments under the store mutex, which gives the
// increment-and-fetch atomicity the Store contract requires. The TTL is set
// when the counter is created and not refreshed on later increments,
// matching EXPIRE NX semantics on the Redis side.
func (ms *MemoryStore) IncrAttempts(_ context.Context, key string, ttl time.Duration) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	c, ok := ms.counters[key]
	if !ok || now.After(c.expiresAt) {
		c = &counter{expiresAt: now.Add(ttl)}
		ms.counters[key] = c
	}
	c.attempts++
	return c.attempts, nil
}

func (ms *MemoryStore) DecrAttempts(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	c, ok := ms.counters[key]
	if !ok {
		return nil
	}
	c.attempts--
	if c.attempts <= 0 {
		delete(ms.counters, key)
	}
	return nil
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeExpired()
		case <-ms.stopCleanup:
			return
		}
	}
}

func (ms *MemoryStore) removeExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for key, c := range ms.counters {
		if now.After(c.expiresAt) {
			delete(ms.counters, key)
		}
	}
}

// Close stops the sweeper goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	ms.closeOnce.Do(func() {
		close(ms.stopCleanup)
	})
}
