// Package obs exposes prometheus metrics for the API.
package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	applicationsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "applications_submitted_total",
		Help: "Applications accepted through the public form.",
	})

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "application_status_changes_total",
			Help: "Admin status updates, by new status.",
		},
		[]string{"status"},
	)
)

func Init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, applicationsSubmitted, statusChanges)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// ApplicationSubmitted counts one accepted submission.
func ApplicationSubmitted() {
	applicationsSubmitted.Inc()
}

// StatusChanged counts one status update.
func StatusChanged(status string) {
	statusChanges.WithLabelValues(status).Inc()
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// Instrument records request counts and latencies.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		status := strconv.Itoa(sw.code)
		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
	})
}
