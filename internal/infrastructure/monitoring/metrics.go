// Package monitoring handles Prometheus metrics collection
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector holds the catalog's Prometheus metrics. Each collector
// carries its own registry so multiple instances can coexist in tests.
type MetricsCollector struct {
	registry *prometheus.Registry

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	recipeSearchesTotal prometheus.Counter
	recipeViewsTotal    prometheus.Counter

	// Cache metrics
	lookupCacheOps *prometheus.CounterVec
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &MetricsCollector{
		registry: registry,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		recipeSearchesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recipe_searches_total",
				Help: "Total number of recipe catalog searches",
			},
		),
		recipeViewsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recipe_views_total",
				Help: "Total number of recipe detail views",
			},
		),

		lookupCacheOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lookup_cache_operations_total",
				Help: "Lookup cache operations by result",
			},
			[]string{"operation", "result"},
		),
	}
}

// Handler exposes the collector's registry in Prometheus text format
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies per route
func (m *MetricsCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		m.httpRequestsTotal.WithLabelValues(
			req.Method,
			req.URL.Path,
			strconv.Itoa(ww.Status()),
		).Inc()
		m.httpRequestDuration.WithLabelValues(
			req.Method,
			req.URL.Path,
		).Observe(time.Since(start).Seconds())
	})
}

// RecordSearch counts one catalog search
func (m *MetricsCollector) RecordSearch() {
	m.recipeSearchesTotal.Inc()
}

// RecordRecipeView counts one recipe detail view
func (m *MetricsCollector) RecordRecipeView() {
	m.recipeViewsTotal.Inc()
}

// RecordCacheOp counts one lookup cache operation
func (m *MetricsCollector) RecordCacheOp(operation, result string) {
	m.lookupCacheOps.WithLabelValues(operation, result).Inc()
}
