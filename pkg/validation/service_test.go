package validation_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/registry"
	"github.com/dmitrymomot/validkit/pkg/rules"
	"github.com/dmitrymomot/validkit/pkg/validation"
)

func newService(t *testing.T, opts ...validation.Option) (*validation.Service, *countingStore) {
	t.Helper()
	store := newCountingStore()
	reg := registry.New(rules.Builtin())
	return validation.New(reg, store, opts...), store
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("checksum scenarios", func(t *testing.T) {
		svc, _ := newService(t)

		assert.True(t, svc.Validate(ctx, "luhn", "4111 1111 1111 1111").Valid)
		assert.False(t, svc.Validate(ctx, "luhn", "4111 1111 1111 1112").Valid)
		assert.True(t, svc.Validate(ctx, "isbn", "978-3-16-148410-0").Valid)
		assert.False(t, svc.Validate(ctx, "isbn", "978-3-16-148410-1").Valid)
		assert.True(t, svc.Validate(ctx, "iban", "GB82WEST12345698765432").Valid)
		assert.False(t, svc.Validate(ctx, "iban", "GB82WEST12345698765431").Valid)
		assert.True(t, svc.Validate(ctx, "vin", "1HGCM82633A004352").Valid)
		assert.False(t, svc.Validate(ctx, "vin", "1HGCM82633A004353").Valid)
	})

	t.Run("invalid value carries rule message", func(t *testing.T) {
		svc, _ := newService(t)

		res := svc.Validate(ctx, "hex_color", "#ggg")
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"is not a valid hex color"}, res.Errors)
		assert.Nil(t, res.JSONLD)
	})

	t.Run("valid result has empty error list", func(t *testing.T) {
		svc, _ := newService(t)

		res := svc.Validate(ctx, "hex_color", "#fff")
		assert.True(t, res.Valid)
		assert.NotNil(t, res.Errors)
		assert.Empty(t, res.Errors)
	})

	t.Run("jsonld attached for schema-tagged rules", func(t *testing.T) {
		svc, _ := newService(t)

		res := svc.Validate(ctx, "isbn", "978-3-16-148410-0")
		require.True(t, res.Valid)
		assert.Equal(t, map[string]any{
			"@context": "https://schema.org",
			"@type":    "Book",
			"isbn":     "978-3-16-148410-0",
		}, res.JSONLD)
	})

	t.Run("no jsonld for invalid values", func(t *testing.T) {
		svc, _ := newService(t)

		res := svc.Validate(ctx, "isbn", "978-3-16-148410-1")
		assert.False(t, res.Valid)
		assert.Nil(t, res.JSONLD)
	})

	t.Run("unknown validator", func(t *testing.T) {
		svc, _ := newService(t)

		res := svc.Validate(ctx, "no_such_rule", "anything")
		assert.False(t, res.Valid)
		assert.Equal(t, []string{validation.MsgValidatorNotFound}, res.Errors)
	})
}

func TestValidateIdempotence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store := newService(t)

	first := svc.Validate(ctx, "luhn", "4242424242424242")
	second := svc.Validate(ctx, "luhn", "4242424242424242")

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), store.setCalls.Load(), "second call must be served from cache")
	assert.Equal(t, int64(1), store.getHits.Load())
}

func TestInvalidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store := newService(t)

	svc.Validate(ctx, "luhn", "4242424242424242")
	require.NoError(t, svc.Invalidate(ctx, "luhn", "4242424242424242"))
	svc.Validate(ctx, "luhn", "4242424242424242")

	assert.Equal(t, int64(2), store.setCalls.Load(), "eviction must force recomputation")
}

func TestBatchValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("preserves order and aggregates validity", func(t *testing.T) {
		svc, _ := newService(t)

		batch := svc.BatchValidate(ctx, "hex_color", []string{"#fff", "#ggg"})
		require.Len(t, batch.Results, 2)
		assert.True(t, batch.Results[0].Valid)
		assert.False(t, batch.Results[1].Valid)
		assert.False(t, batch.Valid)
	})

	t.Run("all valid", func(t *testing.T) {
		svc, _ := newService(t)

		batch := svc.BatchValidate(ctx, "hex_color", []string{"#fff", "#abc", "#1a2b3c"})
		assert.Len(t, batch.Results, 3)
		assert.True(t, batch.Valid)
	})

	t.Run("empty list", func(t *testing.T) {
		svc, _ := newService(t)

		batch := svc.BatchValidate(ctx, "hex_color", nil)
		assert.True(t, batch.Valid)
		assert.Empty(t, batch.Results)
	})
}

func TestLoopGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ceiling reached", func(t *testing.T) {
		store := newCountingStore()
		reg := registry.New(rules.Builtin())
		svc := validation.New(reg, store)

		// Saturate the counter as if five calls were in flight.
		loopKey := validation.LoopKey("luhn", "4242424242424242")
		for range validation.DefaultMaxAttempts {
			_, err := store.IncrAttempts(ctx, loopKey, time.Minute)
			require.NoError(t, err)
		}

		res := svc.Validate(ctx, "luhn", "4242424242424242")
		assert.False(t, res.Valid)
		assert.Equal(t, []string{validation.MsgLoopDetected}, res.Errors)
		assert.True(t, res.LoopDetected())
	})

	t.Run("concurrent calls beyond the ceiling", func(t *testing.T) {
		inner := newCountingStore()
		store := &blockingStore{countingStore: inner, entered: make(chan struct{}, 16), release: make(chan struct{})}
		reg := registry.New(rules.Builtin())
		svc := validation.New(reg, store)

		var wg sync.WaitGroup
		results := make([]validation.Result, validation.DefaultMaxAttempts)
		for i := range validation.DefaultMaxAttempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = svc.Validate(context.Background(), "luhn", "79927398713")
			}()
		}

		// Wait until all five are inside the cache write, loop counters held.
		for range validation.DefaultMaxAttempts {
			<-store.entered
		}

		overflow := svc.Validate(context.Background(), "luhn", "79927398713")
		assert.True(t, overflow.LoopDetected(), "call beyond the ceiling must be rejected")

		close(store.release)
		wg.Wait()

		for _, res := range results {
			assert.True(t, res.Valid, "in-flight calls must complete normally")
		}
	})
}

func TestFailOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reg := registry.New(rules.Builtin())
	svc := validation.New(reg, failingStore{})

	res := svc.Validate(ctx, "luhn", "4242424242424242")
	assert.True(t, res.Valid, "store failure must not fail validation")

	res = svc.Validate(ctx, "hex_color", "#ggg")
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"is not a valid hex color"}, res.Errors)
}

// countingStore wraps MemoryStore, counting cache traffic.
type countingStore struct {
	*validation.MemoryStore
	getHits  atomic.Int64
	setCalls atomic.Int64
}

func newCountingStore() *countingStore {
	return &countingStore{
		MemoryStore: validation.NewMemoryStore(validation.WithCleanupInterval(0)),
	}
}

func (cs *countingStore) GetResult(ctx context.Context, key string) (validation.Result, bool, error) {
	res, ok, err := cs.MemoryStore.GetResult(ctx, key)
	if ok {
		cs.getHits.Add(1)
	}
	return res, ok, err
}

func (cs *countingStore) SetResult(ctx context.Context, key string, res validation.Result, ttl time.Duration) error {
	cs.setCalls.Add(1)
	return cs.MemoryStore.SetResult(ctx, key, res, ttl)
}

// blockingStore parks cache writes until released, keeping loop counters
// held so concurrency can be asserted deterministically.
type blockingStore struct {
	*countingStore
	entered chan struct{}
	release chan struct{}
}

func (bs *blockingStore) SetResult(ctx context.Context, key string, res validation.Result, ttl time.Duration) error {
	bs.entered <- struct{}{}
	<-bs.release
	return bs.countingStore.SetResult(ctx, key, res, ttl)
}

// failingStore errors on every operation.
type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) GetResult(context.Context, string) (validation.Result, bool, error) {
	return validation.Result{}, false, errStoreDown
}

func (failingStore) SetResult(context.Context, string, validation.Result, time.Duration) error {
	return errStoreDown
}

func (failingStore) DeleteResult(context.Context, string) error { return errStoreDown }

func (failingStore) IncrAttempts(context.Context, string, time.Duration) (int64, error) {
	return 0, errStoreDown
}

func (failingStore) DecrAttempts(context.Context, string) error { return errStoreDown }
