package validation

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/registry"
	"github.com/dmitrymomot/validkit/pkg/rules"
)

func TestMetricsObserveCacheTraffic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	metrics := NewMetrics(prometheus.NewRegistry())
	store := NewMemoryStore(WithCleanupInterval(0))
	defer store.Close()

	svc := New(registry.New(rules.Builtin()), store, WithMetrics(metrics))

	svc.Validate(ctx, "luhn", "4242424242424242")
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheMisses))

	svc.Validate(ctx, "luhn", "4242424242424242")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheHits), "repeat call must be a cache hit")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheMisses))
}

func TestMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.recordCacheHit()
		m.recordCacheMiss()
		m.recordValidation("luhn", true)
		m.recordLoopDetected()
	})
}
