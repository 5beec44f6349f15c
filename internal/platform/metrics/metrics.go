package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"lastproject/pkg/platform/audit"
)

// Metrics holds process-wide Prometheus metrics for shared infrastructure.
type Metrics struct {
	AuditQueries      *prometheus.CounterVec
	AuditQueryLatency *prometheus.HistogramVec
}

// New creates and registers the metrics with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates and registers the metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AuditQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lastproject_audit_queries_total",
			Help: "Total audit history queries by backend, event type and result",
		}, []string{"backend", "type", "result"}),
		AuditQueryLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lastproject_audit_query_duration_seconds",
			Help:    "Duration of audit history queries by backend",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"backend"}),
	}
}

// InstrumentedStore records query metrics around an audit store.
type InstrumentedStore struct {
	audit.Store
	backend string
	metrics *Metrics
}

// Instrument wraps store; backend labels the recorded series.
func (m *Metrics) Instrument(store audit.Store, backend string) *InstrumentedStore {
	return &InstrumentedStore{Store: store, backend: backend, metrics: m}
}

func (s *InstrumentedStore) FindEvents(ctx context.Context, query audit.Query) ([]audit.Event, error) {
	start := time.Now()
	events, err := s.Store.FindEvents(ctx, query)
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.metrics.AuditQueries.WithLabelValues(s.backend, query.Type, result).Inc()
	s.metrics.AuditQueryLatency.WithLabelValues(s.backend).Observe(time.Since(start).Seconds())
	return events, err
}
