package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DiscoveryMetrics holds the store discovery and store event metrics.
type DiscoveryMetrics struct {
	// Requests
	DiscoveryRequestsTotal  *prometheus.CounterVec
	DiscoveryDuration       *prometheus.HistogramVec
	DiscoveryResultCount    prometheus.Histogram
	DiscoveryFiltersApplied *prometheus.CounterVec

	// Collaborators
	CollaboratorErrorsTotal *prometheus.CounterVec

	// Store events
	StoreEventsTotal *prometheus.CounterVec
}

// NewDiscoveryMetrics registers the metrics on the default registry.
func NewDiscoveryMetrics() *DiscoveryMetrics {
	return NewDiscoveryMetricsWith(prometheus.DefaultRegisterer)
}

func NewDiscoveryMetricsWith(reg prometheus.Registerer) *DiscoveryMetrics {
	factory := promauto.With(reg)

	return &DiscoveryMetrics{
		DiscoveryRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_discovery_requests_total",
				Help: "Store discovery requests by outcome",
			},
			[]string{"outcome"},
		),

		DiscoveryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "store_discovery_duration_seconds",
				Help:    "Store discovery latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms, 10ms, 20ms...
			},
			[]string{"outcome"},
		),

		DiscoveryResultCount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "store_discovery_result_count",
				Help:    "Number of stores matching a discovery request",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
			},
		),

		DiscoveryFiltersApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_discovery_filters_applied_total",
				Help: "Filters that constrained discovery requests",
			},
			[]string{"filter"},
		),

		CollaboratorErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_discovery_collaborator_errors_total",
				Help: "Failed lookups against settings, price bands or the order service",
			},
			[]string{"collaborator"},
		),

		StoreEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_events_consumed_total",
				Help: "Store events consumed from kafka by type and result",
			},
			[]string{"type", "result"},
		),
	}
}

// RecordDiscovery records a finished discovery request
func (m *DiscoveryMetrics) RecordDiscovery(outcome string, durationSeconds float64, total int64, filters []string) {
	m.DiscoveryRequestsTotal.WithLabelValues(outcome).Inc()
	m.DiscoveryDuration.WithLabelValues(outcome).Observe(durationSeconds)
	if outcome != "success" {
		return
	}
	m.DiscoveryResultCount.Observe(float64(total))
	for _, f := range filters {
		m.DiscoveryFiltersApplied.WithLabelValues(f).Inc()
	}
}

// RecordCollaboratorError counts a failed collaborator lookup
func (m *DiscoveryMetrics) RecordCollaboratorError(collaborator string) {
	m.CollaboratorErrorsTotal.WithLabelValues(collaborator).Inc()
}

// RecordStoreEvent counts a consumed store event
func (m *DiscoveryMetrics) RecordStoreEvent(eventType, result string) {
	m.StoreEventsTotal.WithLabelValues(eventType, result).Inc()
}
