// ABOUTME: Prometheus metrics for CMS queries, dropped batch records and browser web vitals
// ABOUTME: Registered on a caller-supplied registry so tests get an isolated instance

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace prefixes every metric name
	Namespace = "gameportal"

	// Outcome label values for CMS requests
	OutcomeSuccess = "success"
	OutcomeCached  = "cached"
	OutcomeError   = "error"
)

// Metrics holds all Prometheus metrics for the portal
type Metrics struct {
	CMSRequestsTotal   *prometheus.CounterVec
	CMSRequestDuration *prometheus.HistogramVec
	CMSDroppedRecords  *prometheus.CounterVec
	WebVitals          *prometheus.HistogramVec
}

// NewMetrics creates and registers all metrics on reg. A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		CMSRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "cms",
				Name:      "requests_total",
				Help:      "Total number of CMS GraphQL queries by outcome",
			},
			[]string{"query", "outcome"},
		),
		CMSRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "cms",
				Name:      "request_duration_seconds",
				Help:      "Duration of CMS GraphQL queries that reached the network",
				Buckets:   prometheus.ExponentialBuckets(0.025, 2, 10), // 25ms to ~12.8s
			},
			[]string{"query"},
		),
		CMSDroppedRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "cms",
				Name:      "dropped_records_total",
				Help:      "Game records dropped from batch fetches because they failed validation",
			},
			[]string{"field"},
		),
		WebVitals: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "web_vitals",
				Help:      "Browser web vitals reported by visitors",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 100, 1000, 2500, 5000},
			},
			[]string{"name"},
		),
	}
}

// ObserveQuery records one CMS query
func (m *Metrics) ObserveQuery(query, outcome string, duration time.Duration) {
	m.CMSRequestsTotal.WithLabelValues(query, outcome).Inc()
	if outcome != OutcomeCached {
		m.CMSRequestDuration.WithLabelValues(query).Observe(duration.Seconds())
	}
}

// RecordDropped counts a batch record rejected by validation
func (m *Metrics) RecordDropped(field string) {
	m.CMSDroppedRecords.WithLabelValues(field).Inc()
}

// ObserveWebVital records a browser metric value
func (m *Metrics) ObserveWebVital(name string, value float64) {
	m.WebVitals.WithLabelValues(name).Observe(value)
}
