package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the routing engine metrics.
type Metrics struct {
	MatchChecks         *prometheus.CounterVec
	PermissionDecisions *prometheus.CounterVec
	Translations        *prometheus.CounterVec
	Compositions        *prometheus.CounterVec
	ParseErrors         *prometheus.CounterVec
	OperationDuration   *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance with all engine metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		MatchChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semsubject",
				Subsystem: "pattern",
				Name:      "match_checks_total",
				Help:      "Total number of pattern match checks",
			},
			[]string{"result"},
		),

		PermissionDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semsubject",
				Subsystem: "permission",
				Name:      "decisions_total",
				Help:      "Total number of permission decisions",
			},
			[]string{"operation", "decision"},
		),

		Translations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semsubject",
				Subsystem: "translator",
				Name:      "translations_total",
				Help:      "Total number of subject translations",
			},
			[]string{"direction", "outcome"},
		),

		Compositions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semsubject",
				Subsystem: "algebra",
				Name:      "compositions_total",
				Help:      "Total number of algebra compositions",
			},
			[]string{"operation", "outcome"},
		),

		ParseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semsubject",
				Subsystem: "parser",
				Name:      "errors_total",
				Help:      "Total number of subject parse failures",
			},
			[]string{"kind"},
		),

		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semsubject",
				Subsystem: "engine",
				Name:      "operation_duration_seconds",
				Help:      "Engine operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordMatchCheck increments the match check counter.
func (m *Metrics) RecordMatchCheck(matched bool) {
	result := "miss"
	if matched {
		result = "match"
	}
	m.MatchChecks.WithLabelValues(result).Inc()
}

// RecordPermissionDecision increments the permission decision counter.
func (m *Metrics) RecordPermissionDecision(operation string, allowed bool) {
	decision := "deny"
	if allowed {
		decision = "allow"
	}
	m.PermissionDecisions.WithLabelValues(operation, decision).Inc()
}

// RecordTranslation increments the translation counter. Direction is
// "forward" or "reverse"; outcome is "translated", "pass_through" or
// "error".
func (m *Metrics) RecordTranslation(direction, outcome string) {
	m.Translations.WithLabelValues(direction, outcome).Inc()
}

// RecordComposition increments the composition counter.
func (m *Metrics) RecordComposition(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Compositions.WithLabelValues(operation, outcome).Inc()
}

// RecordParseError increments the parse failure counter.
func (m *Metrics) RecordParseError(kind string) {
	m.ParseErrors.WithLabelValues(kind).Inc()
}

// RecordOperationDuration observes an engine operation duration.
func (m *Metrics) RecordOperationDuration(operation string, duration time.Duration) {
	m.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// collectors returns every metric for registration.
func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.MatchChecks,
		m.PermissionDecisions,
		m.Translations,
		m.Compositions,
		m.ParseErrors,
		m.OperationDuration,
	}
}
