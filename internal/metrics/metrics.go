// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts inbound API requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitstop_http_requests_total",
		Help: "Inbound HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// HTTPDuration tracks inbound request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pitstop_http_request_duration_seconds",
		Help:    "Inbound HTTP request duration.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// UpstreamRequests counts calls to external providers (maps, oracle) by
	// provider, operation and outcome.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitstop_upstream_requests_total",
		Help: "Requests issued to upstream providers.",
	}, []string{"provider", "operation", "outcome"})
)

// Handler returns the Prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
