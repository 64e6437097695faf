// Package metrics holds the Prometheus collectors shared by the Canvas client
// and the harvester. They register against the default registry, which the
// API server exposes on its metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coursesearch"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HarvestBuckets covers whole-course harvests, which include the paced
// dependent fetches and routinely run for tens of seconds.
var HarvestBuckets = []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// CanvasRequests counts requests sent to Canvas by method and response status.
	CanvasRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "canvas",
		Name:      "requests_total",
		Help:      "Requests sent to the Canvas REST API.",
	}, []string{"method", "status"})

	// CanvasRequestDuration observes Canvas round-trip latency.
	CanvasRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "canvas",
		Name:      "request_duration_seconds",
		Help:      "Latency of Canvas REST API requests.",
		Buckets:   DefaultBuckets,
	}, []string{"method"})

	// DroppedPages counts bulk-phase pages that were skipped because Canvas
	// answered with a non-200 status or a body that was not an array.
	DroppedPages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "canvas",
		Name:      "dropped_pages_total",
		Help:      "Bulk pagination pages skipped without error.",
	}, []string{"reason"})

	// HarvestDuration observes complete harvest runs.
	HarvestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "harvest",
		Name:      "duration_seconds",
		Help:      "Duration of full course harvests.",
		Buckets:   HarvestBuckets,
	})

	// HarvestFailures counts endpoint and dependent fetches that failed during a harvest.
	HarvestFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "harvest",
		Name:      "failures_total",
		Help:      "Harvest fetches that failed, by resource.",
	}, []string{"resource"})

	// DependentFetches counts module-item content fetched individually.
	DependentFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "harvest",
		Name:      "dependent_fetches_total",
		Help:      "Module item contents fetched because they were missing from their bucket.",
	}, []string{"kind"})
)

//nolint: gochecknoglobals
var (
	// HTTPRequests counts API requests by route pattern and response status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by route pattern and status.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration observes API request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests served.",
		Buckets:   HarvestBuckets,
	}, []string{"method", "route"})
)
