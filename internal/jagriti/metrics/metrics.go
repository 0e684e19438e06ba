package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for upstream calls, the reference-data cache,
// and case searches.
type Metrics struct {
	// Upstream call latency by endpoint and outcome
	UpstreamLatency *prometheus.HistogramVec

	// Reference cache lookups by cache and result (hit, miss)
	CacheLookups *prometheus.CounterVec

	// Search outcomes by search type and outcome
	SearchOutcome *prometheus.CounterVec
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lexi_upstream_request_duration_seconds",
			Help:    "Duration of e-Jagriti upstream calls by endpoint and outcome",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"endpoint", "outcome"}), // outcome: "ok" or an error category

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lexi_reference_cache_lookups_total",
			Help: "Reference data cache lookups by cache and result",
		}, []string{"cache", "result"}),

		SearchOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lexi_case_search_total",
			Help: "Case searches by search type and outcome",
		}, []string{"search_type", "outcome"}),
	}
}

// ObserveUpstream records the duration of one upstream call.
func (m *Metrics) ObserveUpstream(endpoint, outcome string, d time.Duration) {
	if m != nil {
		m.UpstreamLatency.WithLabelValues(endpoint, outcome).Observe(d.Seconds())
	}
}

// RecordCacheHit counts a lookup answered from memory.
func (m *Metrics) RecordCacheHit(cache string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(cache, "hit").Inc()
	}
}

// RecordCacheMiss counts a lookup that required an upstream fetch.
func (m *Metrics) RecordCacheMiss(cache string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(cache, "miss").Inc()
	}
}

// IncrementSearch records a search outcome.
func (m *Metrics) IncrementSearch(searchType, outcome string) {
	if m != nil {
		m.SearchOutcome.WithLabelValues(searchType, outcome).Inc()
	}
}
