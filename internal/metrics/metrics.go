// Package metrics defines the Prometheus collectors marquee exports on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marquee"

var (
	// CatalogRequests counts catalog API calls by endpoint and outcome.
	CatalogRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_requests_total",
		Help:      "Catalog API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	// CatalogDuration observes catalog API latency.
	CatalogDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_request_duration_seconds",
		Help:      "Catalog API request latencies in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// RateLimitWait observes how long outbound calls waited for a token.
	RateLimitWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ratelimit_wait_seconds",
		Help:      "Time spent waiting on outbound rate limiters",
		Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"limiter"})

	// StaleDiscards counts fetch completions dropped because the view moved on.
	StaleDiscards = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detail_stale_discards_total",
		Help:      "Fetch completions discarded because a newer cycle had started",
	}, []string{"fetch"})

	// HTTPRequestDuration observes page latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latencies in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// HTTPRequestsInFlight tracks requests currently being served.
	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "Current number of HTTP requests being served",
	})
)

// Outcome labels for CatalogRequests.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
