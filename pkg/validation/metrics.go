package validation

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus collectors for the validation service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	validations    *prometheus.CounterVec
	loopDetections prometheus.Counter
}

// NewMetrics creates collectors registered with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "validkit_cache_hits_total",
			Help: "Total number of validations served from the result cache",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "validkit_cache_misses_total",
			Help: "Total number of validations not served from the result cache",
		}),
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "validkit_validations_total",
			Help: "Total number of rule executions by symbol and outcome",
		}, []string{"symbol", "valid"}),
		loopDetections: factory.NewCounter(prometheus.CounterOpts{
			Name: "validkit_loop_detections_total",
			Help: "Total number of validations rejected by the loop guard",
		}),
	}
}

func (m *Metrics) recordCacheHit() {
	if m != nil {
		m.cacheHits.Inc()
	}
}

func (m *Metrics) recordCacheMiss() {
	if m != nil {
		m.cacheMisses.Inc()
	}
}

func (m *Metrics) recordValidation(symbol string, valid bool) {
	if m != nil {
		m.validations.WithLabelValues(symbol, strconv.FormatBool(valid)).Inc()
	}
}

func (m *Metrics) recordLoopDetected() {
	if m != nil {
		m.loopDetections.Inc()
	}
}
