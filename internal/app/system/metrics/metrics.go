// Package metrics exposes the service's Prometheus instrumentation: HTTP
// request counters/latency plus a few domain counters the dashboards watch.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aivista_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aivista_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	quickWinTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aivista_quickwin_transitions_total",
			Help: "Total number of quick-win status transitions",
		},
		[]string{"status"},
	)

	scopeDeniedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aivista_scope_denied_total",
			Help: "Total number of requests rejected for missing tenant scope",
		},
	)
)

// Middleware records request count and duration per method/route/status.
// The chi route pattern is used as the path label so ids do not explode
// the cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				path = p
			}
		}
		status := strconv.Itoa(ww.Status())
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

// RecordQuickWinTransition counts a successful status transition.
func RecordQuickWinTransition(status string) {
	quickWinTransitions.WithLabelValues(status).Inc()
}

// RecordScopeDenied counts a request rejected for missing tenant scope.
func RecordScopeDenied() {
	scopeDeniedTotal.Inc()
}
