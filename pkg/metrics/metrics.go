// Package metrics exposes Prometheus instrumentation for the dashboard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashboard"

// Custom registry to avoid the default Go collectors.
var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status code.",
	}, []string{"endpoint", "method", "status"})

	httpDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by endpoint and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "method"})

	renderErrors = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chart_render_errors_total",
		Help:      "Chart render failures, including unknown metric names.",
	})

	datasetRows = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dataset_rows",
		Help:      "Rows in the unified table after normalization.",
	})

	datasetDropped = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dataset_dropped_rows",
		Help:      "Source rows dropped for an unparseable date.",
	})

	datasetAthletes = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dataset_athletes",
		Help:      "Distinct athletes in the unified table.",
	})
)

// Handler returns the exposition endpoint for the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one completed request.
func RecordHTTPRequest(endpoint, method, status string, seconds float64) {
	httpRequests.WithLabelValues(endpoint, method, status).Inc()
	httpDuration.WithLabelValues(endpoint, method).Observe(seconds)
}

// RecordRenderError counts a chart render failure.
func RecordRenderError() {
	renderErrors.Inc()
}

// SetDatasetStats publishes the unified table's shape after startup.
func SetDatasetStats(rows, dropped, athletes int) {
	datasetRows.Set(float64(rows))
	datasetDropped.Set(float64(dropped))
	datasetAthletes.Set(float64(athletes))
}
