// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records per-request metrics on its own registry so the exposition
// endpoint only carries this service's series.
type Collector struct {
	registry      *prometheus.Registry
	requestsTotal *prometheus.CounterVec
	latency       prometheus.Histogram
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pitang_http_requests_total",
			Help: "Requests served, by method and status code.",
		}, []string{"method", "status_code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pitang_http_request_duration_seconds",
			Help:    "Request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	c.registry.MustRegister(c.requestsTotal, c.latency)
	return c
}

// Handler serves the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records the status and latency of every request.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		c.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(recorder.status)).Inc()
		c.latency.Observe(time.Since(started).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(statusCode int) {
	if s.wroteHeader {
		return
	}
	s.status = statusCode
	s.wroteHeader = true
	s.ResponseWriter.WriteHeader(statusCode)
}
