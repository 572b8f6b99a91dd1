// Package metrics exposes HTTP request metrics in the prometheus format.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Path is the default path of the metrics endpoint.
const Path = "/metrics"

// Metrics holds the request collectors of one app.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry so several apps can live
// in one process.
func New(appName string) *Metrics {
	labels := prometheus.Labels{"app": appName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of handled HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of handled HTTP requests.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	// go and process collectors come with the default registry
	m.registry.MustRegister(m.requests, m.duration)

	return m
}

// Middleware records every request. Mount it outside the access logger so
// chain errors are already turned into responses.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()

		if err != nil {
			if e, ok := err.(*fiber.Error); ok { //nolint:errorlint // fiber returns it unwrapped
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler serves the app's collectors together with the process wide
// default registry, which holds the log line counter.
func (m *Metrics) Handler() fiber.Handler {
	gatherers := prometheus.Gatherers{m.registry, prometheus.DefaultGatherer}

	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))
}
