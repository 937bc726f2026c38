package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce       sync.Once
	logWritesTotal     *prometheus.CounterVec
	logQueryFailures   *prometheus.CounterVec
	imageUploadsTotal  *prometheus.CounterVec
	imageUploadLatency prometheus.Histogram
	adminChecksTotal   *prometheus.CounterVec
	reconnectAttempts  prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the service.
func RegisterMetrics() {
	registerOnce.Do(func() {
		logWritesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dutylog_log_writes_total",
			Help: "Total number of duty log entries written, by action.",
		}, []string{"action", "status"})

		logQueryFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dutylog_log_query_failures_total",
			Help: "Total number of swallowed log read failures, by operation.",
		}, []string{"operation"})

		imageUploadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dutylog_image_uploads_total",
			Help: "Total number of inspection image uploads, by outcome.",
		}, []string{"status"})

		imageUploadLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dutylog_image_upload_latency_seconds",
			Help:    "Latency distribution for inspection image storage.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		})

		adminChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dutylog_admin_checks_total",
			Help: "Total number of admin allow-list checks, by result.",
		}, []string{"result"})

		reconnectAttempts = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dutylog_db_reconnect_attempts_total",
			Help: "Total number of database reconnect attempts.",
		})

		prometheus.MustRegister(logWritesTotal, logQueryFailures, imageUploadsTotal, imageUploadLatency, adminChecksTotal, reconnectAttempts)
	})
}

// LogWrites exposes the counter for duty log writes.
func LogWrites() *prometheus.CounterVec {
	RegisterMetrics()
	return logWritesTotal
}

// LogQueryFailures exposes the counter for swallowed read failures.
func LogQueryFailures() *prometheus.CounterVec {
	RegisterMetrics()
	return logQueryFailures
}

// ImageUploads exposes the counter for image uploads.
func ImageUploads() *prometheus.CounterVec {
	RegisterMetrics()
	return imageUploadsTotal
}

// ImageUploadLatency exposes the latency histogram for image storage.
func ImageUploadLatency() prometheus.Histogram {
	RegisterMetrics()
	return imageUploadLatency
}

// AdminChecks exposes the counter for admin allow-list checks.
func AdminChecks() *prometheus.CounterVec {
	RegisterMetrics()
	return adminChecksTotal
}

// ReconnectAttempts exposes the counter for database reconnects.
func ReconnectAttempts() prometheus.Counter {
	RegisterMetrics()
	return reconnectAttempts
}
