// Package metrics holds the Prometheus instruments of the API client and the
// optional HTTP endpoint that exposes them.
//
//	┌─────────────────────────────────────┬─────────┬────────────────────────────────────┐
//	│ Metric Name                         │ Type    │ Description                        │
//	├─────────────────────────────────────┼─────────┼────────────────────────────────────┤
//	│ octofit_api_requests_total          │ Counter │ Collection requests by resource    │
//	│ octofit_api_errors_total            │ Counter │ Failed requests by resource, kind  │
//	│ octofit_api_latency_seconds         │ Hist    │ Request latency by resource        │
//	│ octofit_api_records_total           │ Counter │ Records received by resource       │
//	│ octofit_viewer_stale_results_total  │ Counter │ Responses dropped as out of order  │
//	└─────────────────────────────────────┴─────────┴────────────────────────────────────┘
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics used by octofit.
// Using promauto for automatic registration with the default registry.
var Metrics = struct {
	APIRequestsTotal  *prometheus.CounterVec
	APIErrorsTotal    *prometheus.CounterVec
	APILatency        *prometheus.HistogramVec
	APIRecordsTotal   *prometheus.CounterVec
	StaleResultsTotal *prometheus.CounterVec
}{
	APIRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "octofit_api_requests_total",
		Help: "Total number of collection requests sent to the OctoFit API.",
	}, []string{"resource"}),

	APIErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "octofit_api_errors_total",
		Help: "Total number of failed collection requests by error kind.",
	}, []string{"resource", "kind"}),

	APILatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "octofit_api_latency_seconds",
		Help:    "OctoFit API response latency in seconds.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"resource"}),

	APIRecordsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "octofit_api_records_total",
		Help: "Total number of records received from the OctoFit API.",
	}, []string{"resource"}),

	StaleResultsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "octofit_viewer_stale_results_total",
		Help: "Responses discarded because a newer request was issued.",
	}, []string{"resource"}),
}
