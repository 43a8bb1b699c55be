package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus collectors for the search endpoint.
type Metrics struct {
	SearchesTotal  *prometheus.CounterVec
	SearchDuration prometheus.Histogram
}

// NewMetrics constructs and registers the collectors. Pass
// prometheus.DefaultRegisterer in production so the /metrics server picks
// them up; tests use a dedicated registry.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	searches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deals_searches_total",
			Help: "Total search requests served, labeled by sort directive.",
		},
		[]string{"sort_by"},
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deals_search_duration_seconds",
			Help:    "Search request handling latency.",
			Buckets: prometheus.DefBuckets,
		},
	)

	registerer.MustRegister(searches, duration)

	return &Metrics{
		SearchesTotal:  searches,
		SearchDuration: duration,
	}
}

// ObserveSearch records one handled search request.
func (m *Metrics) ObserveSearch(sortBy string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.SearchesTotal.WithLabelValues(sortBy).Inc()
	m.SearchDuration.Observe(elapsed.Seconds())
}
