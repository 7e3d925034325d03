// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jobportal"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	applicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "submitted_total",
			Help:      "Total number of submitted applications.",
		},
	)

	applicationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "transitions_total",
			Help:      "Total number of status transitions by target status.",
		},
		[]string{"status"},
	)

	sideEffectFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "side_effect_failures_total",
			Help:      "Best-effort writes that failed after the primary write succeeded.",
		},
		[]string{"step"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "dispatched_total",
			Help:      "Notifications handled by the dispatcher by outcome.",
		},
		[]string{"outcome"},
	)

	countersReconciled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "counters",
			Name:      "reconciled_rows_total",
			Help:      "Rows whose denormalized counters were corrected by reconciliation.",
		},
		[]string{"table"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		applicationsSubmitted,
		applicationTransitions,
		sideEffectFailures,
		notifications,
		countersReconciled,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps next with HTTP metrics collection. It must wrap the
// router directly so the matched route pattern is visible after dispatch.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ApplicationSubmitted records a successful submission.
func ApplicationSubmitted() {
	applicationsSubmitted.Inc()
}

// ApplicationTransitioned records a status transition into status.
func ApplicationTransitioned(status string) {
	applicationTransitions.WithLabelValues(status).Inc()
}

// SideEffectFailed records a failed best-effort write.
func SideEffectFailed(step string) {
	sideEffectFailures.WithLabelValues(step).Inc()
}

// NotificationsDispatched records n notifications with the given outcome.
func NotificationsDispatched(outcome string, n int) {
	notifications.WithLabelValues(outcome).Add(float64(n))
}

// CountersReconciled records n corrected rows in table.
func CountersReconciled(table string, n int64) {
	countersReconciled.WithLabelValues(table).Add(float64(n))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
