// Package metrics defines the Prometheus instrumentation for the API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "echub",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "handler", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "echub",
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~32s
		},
		[]string{"method", "handler"},
	)

	// Report domain metrics
	reportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "echub",
			Subsystem: "report",
			Name:      "generated_total",
			Help:      "Total number of reports generated",
		},
		[]string{"locale", "grade", "company_size"},
	)

	reportGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "echub",
			Subsystem: "report",
			Name:      "generation_duration_seconds",
			Help:      "Report pipeline duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 100μs to ~1.6s
		},
	)

	reportDownloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "echub",
			Subsystem: "report",
			Name:      "downloads_total",
			Help:      "Total number of report PDF downloads",
		},
	)

	reportCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "echub",
			Subsystem: "report",
			Name:      "cache_requests_total",
			Help:      "Report snapshot cache lookups",
		},
		[]string{"result"},
	)

	// Lead domain metrics
	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "echub",
			Subsystem: "lead",
			Name:      "captured_total",
			Help:      "Total number of leads captured",
		},
		[]string{"source"},
	)

	rateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "echub",
			Subsystem: "api",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, handler string, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, handler, status).Inc()
	httpRequestDuration.WithLabelValues(method, handler).Observe(duration.Seconds())
}

// RecordReportGenerated records one finished report pipeline run.
func RecordReportGenerated(locale, grade, companySize string, duration time.Duration) {
	reportsGenerated.WithLabelValues(locale, grade, companySize).Inc()
	reportGenerationDuration.Observe(duration.Seconds())
}

// RecordReportDownload counts a PDF download.
func RecordReportDownload() {
	reportDownloads.Inc()
}

// RecordReportCacheLookup counts a snapshot cache hit or miss.
func RecordReportCacheLookup(hit bool) {
	if hit {
		reportCacheHits.WithLabelValues("hit").Inc()
	} else {
		reportCacheHits.WithLabelValues("miss").Inc()
	}
}

// RecordLeadCaptured counts a captured lead by source.
func RecordLeadCaptured(source string) {
	leadsCaptured.WithLabelValues(source).Inc()
}

// RecordRateLimited counts a request rejected by the rate limiter.
func RecordRateLimited() {
	rateLimited.Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
