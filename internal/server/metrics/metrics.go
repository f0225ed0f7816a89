// Package metrics records per-route request counts and latencies and exposes
// them in the Prometheus text format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	RequestCountName   = "app_request_count"
	RequestLatencyName = "app_request_latency_seconds"

	// ExpositionPath is served by the dedicated metrics listener.
	ExpositionPath = "/metrics"
)

// Collector owns a private registry rather than using the global default.
type Collector struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewCollector creates the request metrics together with the Go runtime and
// process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: RequestCountName,
			Help: "Application Request Count",
		}, []string{"method", "endpoint", "http_status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    RequestLatencyName,
			Help:    "Application Request Latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}

	c.registry.MustRegister(
		c.requests,
		c.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry returns the registry backing this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Middleware observes every request on a route. endpoint is the route path, not
// the request path, so that unmatched paths cannot grow label cardinality.
func (c *Collector) Middleware(endpoint string) httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		start := time.Now()
		rp.Next()

		method := rp.Request().Method
		status := rp.Writer().Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.requests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
		c.latency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Routes returns the route set for the metrics listener.
func (c *Collector) Routes() ([]httpserver.Route, error) {
	route, err := httpserver.NewRouteFromHandlerFunc("prometheus", ExpositionPath, c.Handler().ServeHTTP)
	if err != nil {
		return nil, err
	}
	return []httpserver.Route{*route}, nil
}
