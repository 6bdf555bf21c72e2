// Package metrics exposes Prometheus counters for the management API and
// the upstream Cloudflare calls it triggers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequests counts management API requests by route and status.
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cfadmin_api_requests_total",
			Help: "Number of management API requests.",
		},
		[]string{"method", "path", "status"},
	)

	// CloudflareRequests counts upstream Cloudflare operations by outcome.
	CloudflareRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cfadmin_cloudflare_requests_total",
			Help: "Number of Cloudflare API operations issued.",
		},
		[]string{"operation", "outcome"},
	)
)

// ObserveCloudflare records one upstream operation result.
func ObserveCloudflare(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	CloudflareRequests.WithLabelValues(operation, outcome).Inc()
}
