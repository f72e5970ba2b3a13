// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Rate lookup outcomes.
const (
	LookupHit      = "hit"
	LookupMiss     = "miss"
	LookupStale    = "stale"
	LookupIdentity = "identity"
)

// RateMetrics counts rate cache lookups and provider fetches. A nil *RateMetrics is a no-op.
type RateMetrics struct {
	Lookups *prometheus.CounterVec
	Fetches *prometheus.CounterVec
}

// NewRateMetrics creates the rate collectors and registers them on reg.
func NewRateMetrics(reg prometheus.Registerer) *RateMetrics {
	m := &RateMetrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expense_tracker",
			Subsystem: "fx",
			Name:      "rate_lookups_total",
			Help:      "Rate resolutions by cache outcome.",
		}, []string{"result"}),
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expense_tracker",
			Subsystem: "fx",
			Name:      "provider_fetches_total",
			Help:      "External rate provider calls by outcome.",
		}, []string{"provider", "outcome"}),
	}
	reg.MustRegister(m.Lookups, m.Fetches)
	return m
}

// ObserveLookup records the outcome of a cache consultation.
func (m *RateMetrics) ObserveLookup(result string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(result).Inc()
}

// ObserveFetch records one provider call.
func (m *RateMetrics) ObserveFetch(provider string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.Fetches.WithLabelValues(provider, outcome).Inc()
}

// HTTPMetrics observes request latency per route.
type HTTPMetrics struct {
	Duration *prometheus.HistogramVec
}

// NewHTTPMetrics creates the HTTP collectors and registers them on reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "expense_tracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.Duration)
	return m
}
