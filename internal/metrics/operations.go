// Package metrics instruments exactcalc with Prometheus counters and
// runtime memory snapshots.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics tracks evaluation outcomes per backend. Each instance
// owns its registry so repeated construction (tests, embedded use) never
// trips duplicate-registration panics.
type OperationMetrics struct {
	registry *prometheus.Registry

	evaluations *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	parseErrors prometheus.Counter
}

// NewOperationMetrics creates and registers the evaluation metrics.
func NewOperationMetrics() *OperationMetrics {
	m := &OperationMetrics{registry: prometheus.NewRegistry()}

	m.evaluations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exactcalc_evaluations_total",
		Help: "Expression evaluations by backend and outcome.",
	}, []string{"backend", "outcome"})

	m.durations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "exactcalc_evaluation_seconds",
		Help:    "Evaluation wall-clock time by backend.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"backend"})

	m.parseErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "exactcalc_parse_errors_total",
		Help: "Expressions rejected by the parser.",
	})

	m.registry.MustRegister(m.evaluations, m.durations, m.parseErrors)
	return m
}

// Registry exposes the underlying registry for HTTP handlers.
func (m *OperationMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveEvaluation records one evaluation outcome. Safe on a nil receiver
// so instrumentation can be optional.
func (m *OperationMetrics) ObserveEvaluation(backend string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.evaluations.WithLabelValues(backend, outcome).Inc()
	m.durations.WithLabelValues(backend).Observe(d.Seconds())
}

// ObserveParseError records one rejected expression.
func (m *OperationMetrics) ObserveParseError() {
	if m == nil {
		return
	}
	m.parseErrors.Inc()
}
