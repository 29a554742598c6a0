// Package metrics owns the Prometheus registry of the service: HTTP request
// counters and latencies, and outcome counters for user-service calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coffeetech/farms/internal/shared/config"
)

// Collector wraps the service's metric vectors and their private registry.
type Collector struct {
	registry *prometheus.Registry
	path     string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	remoteCallsTotal    *prometheus.CounterVec
	remoteCallDuration  *prometheus.HistogramVec
}

// NewCollector registers every vector on a fresh registry, so tests and
// multiple servers in one process never collide on the default registerer.
func NewCollector(cfg config.MetricsConfig) *Collector {
	ns := cfg.Namespace
	if ns == "" {
		ns = "farms"
	}
	path := cfg.Path
	if path == "" {
		path = "/metrics"
	}

	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		path:     path,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status_code"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		remoteCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "user_service",
			Name:      "calls_total",
			Help:      "Total number of calls to the user service by operation and outcome",
		}, []string{"operation", "outcome"}),
		remoteCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "user_service",
			Name:      "call_duration_seconds",
			Help:      "Duration of calls to the user service in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.remoteCallsTotal,
		c.remoteCallDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Path returns the configured scrape path.
func (c *Collector) Path() string { return c.path }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// RecordHTTPRequest records one served request. path is the route template,
// never the raw URL.
func (c *Collector) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveCall records one user-service call.
func (c *Collector) ObserveCall(operation, outcome string, duration time.Duration) {
	c.remoteCallsTotal.WithLabelValues(operation, outcome).Inc()
	c.remoteCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
