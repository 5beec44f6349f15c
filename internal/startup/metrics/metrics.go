package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for startup resolutions.
const (
	OutcomeDisabled        = "disabled"
	OutcomeNoHistory       = "no_history"
	OutcomeStaleProject    = "stale_project"
	OutcomeProjectVanished = "project_vanished"
	OutcomeActivated       = "activated"
	OutcomeFailed          = "failed"
)

// Metrics provides observability for startup resolution.
type Metrics struct {
	// Resolution outcomes by result
	ResolveOutcome *prometheus.CounterVec

	// Overall resolution latency including project loading
	ResolveLatency prometheus.Histogram

	// Environment events inspected before a match or exhaustion
	EnvironmentEventsScanned prometheus.Histogram
}

// New registers startup metrics with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers startup metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ResolveOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lastproject_startup_resolutions_total",
			Help: "Total startup resolutions by outcome",
		}, []string{"outcome"}),

		ResolveLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lastproject_startup_resolve_duration_seconds",
			Help:    "Duration of startup resolution including project loading",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		EnvironmentEventsScanned: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lastproject_startup_environment_events_scanned",
			Help:    "Environment audit events inspected per resolution",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
	}
}

// IncrementOutcome records a resolution outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.ResolveOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveResolveLatency records the total resolution duration.
func (m *Metrics) ObserveResolveLatency(d time.Duration) {
	if m != nil {
		m.ResolveLatency.Observe(d.Seconds())
	}
}

// ObserveEnvironmentScan records how many environment events were inspected.
func (m *Metrics) ObserveEnvironmentScan(n int) {
	if m != nil {
		m.EnvironmentEventsScanned.Observe(float64(n))
	}
}
