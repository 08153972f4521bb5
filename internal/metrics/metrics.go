// Package metrics declares the Prometheus collectors of the service.
// Collectors are registered with the default registry and exposed by
// GET /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viralcraft_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "viralcraft_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 2, 3, 4, 5, 10},
		},
		[]string{"method", "route"},
	)

	VideosGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viralcraft_videos_generated_total",
			Help: "Total number of generated video concepts",
		},
		[]string{"category"},
	)

	ViralScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "viralcraft_viral_score",
			Help:    "Estimated viral score of generated video concepts",
			Buckets: prometheus.LinearBuckets(70, 5, 6), // 70 to 95
		},
	)

	AttributionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viralcraft_attribution_failures_total",
			Help: "Generations whose persistence to the user history failed",
		},
		[]string{"step"},
	)

	TrendSyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viralcraft_trend_sync_runs_total",
			Help: "Trend popularity refresh runs",
		},
		[]string{"status"},
	)
)

// RecordHTTPRequest records a completed request. route is the matched
// route pattern, never the raw path.
func RecordHTTPRequest(method, route string, status int, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}

func RecordGeneration(category string, score int) {
	VideosGeneratedTotal.WithLabelValues(category).Inc()
	ViralScore.Observe(float64(score))
}

func RecordAttributionFailure(step string) {
	AttributionFailuresTotal.WithLabelValues(step).Inc()
}

func RecordTrendSync(ok bool) {
	status := "success"
	if !ok {
		status = "failure"
	}
	TrendSyncRunsTotal.WithLabelValues(status).Inc()
}
