package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// staleAfter is how long an untouched bucket survives before the sweeper
// reclaims it.
const staleAfter = time.Hour

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
}

// MemoryStore keeps buckets in a mutex-guarded map. A background sweeper
// evicts buckets idle longer than an hour so abandoned client keys do not
// accumulate.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState

	sweepEvery time.Duration
	done       chan struct{}
}

type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets the sweep cadence; 0 disables the sweeper.
func WithCleanupInterval(d time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) { ms.sweepEvery = d }
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:    make(map[string]*bucketState),
		sweepEvery: 5 * time.Minute,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}
	if ms.sweepEvery > 0 {
		go ms.sweep()
	}
	return ms
}

// ConsumeTokens refills the bucket for the elapsed intervals, then takes the
// requested tokens. The count may go negative; that is the deny signal, and
// it keeps aggressive clients waiting for real refills instead of resetting.
func (ms *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	now := time.Now()

	ms.mu.Lock()
	defer ms.mu.Unlock()

	b, ok := ms.buckets[key]
	if !ok {
		b = &bucketState{tokens: config.Capacity, lastRefill: now}
		ms.buckets[key] = b
	}

	// Cap the interval count so a bucket idle for days cannot overflow the
	// token arithmetic.
	intervals := int64(now.Sub(b.lastRefill) / config.RefillInterval)
	if max := int64(config.Capacity/config.RefillRate) + 1; intervals > max {
		intervals = max
	}
	if intervals > 0 {
		b.tokens = min(b.tokens+int(intervals)*config.RefillRate, config.Capacity)
		b.lastRefill = now
	}

	b.tokens -= tokens
	b.lastSeen = now

	return b.tokens, b.lastRefill.Add(config.RefillInterval), nil
}

func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.buckets, key)
	return nil
}

func (ms *MemoryStore) sweep() {
	ticker := time.NewTicker(ms.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-staleAfter)
			ms.mu.Lock()
			for key, b := range ms.buckets {
				if b.lastSeen.Before(cutoff) {
					delete(ms.buckets, key)
				}
			}
			ms.mu.Unlock()
		case <-ms.done:
			return
		}
	}
}

// Close stops the sweeper. Safe to call more than once.
func (ms *MemoryStore) Close() {
	select {
	case <-ms.done:
	default:
		close(ms.done)
	}
}
