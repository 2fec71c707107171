// Package metrics provides the centralized Prometheus registry for the
// Bonusly client. All metrics are defined in their respective packages
// (client, pagination) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the Bonusly client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - bonusly_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - bonusly_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - bonusly_errors_total{kind} (Counter): Errors by kind (transport, http_status, decode, api, configuration)
//
// Pagination Metrics (pkg/pagination):
//   - bonusly_page_fetches_total (Counter): Page fetches issued by pagers
//   - bonusly_page_items_total (Counter): Items received across all page fetches
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(bonusly_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(bonusly_request_duration_seconds_bucket[5m]))
//
//   # Average Items per Page Fetch
//   rate(bonusly_page_items_total[5m]) / rate(bonusly_page_fetches_total[5m])
