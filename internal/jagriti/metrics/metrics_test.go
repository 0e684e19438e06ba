package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpstream("states", "ok", time.Second)
		m.RecordCacheHit("states")
		m.RecordCacheMiss("states")
		m.IncrementSearch("judge", "ok")
	})
}

func TestCounters(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.RecordCacheHit("commissions")
	m.RecordCacheHit("commissions")
	m.RecordCacheMiss("commissions")
	m.IncrementSearch("case_number", "not_found")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("commissions", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("commissions", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchOutcome.WithLabelValues("case_number", "not_found")))
}
