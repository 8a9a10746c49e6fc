package monitoring

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cardMovesTotal  *prometheus.CounterVec
	registry        *prometheus.Registry
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gearguard_http_requests_total",
			Help: "Handled HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gearguard_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		cardMovesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gearguard_board_card_moves_total",
			Help: "Board card moves by destination column and outcome.",
		}, []string{"column", "outcome"}),
	}
}

// Middleware records per-request counters and latency.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			m.requestsTotal.WithLabelValues(
				c.Request().Method, path, strconv.Itoa(c.Response().Status),
			).Inc()
			m.requestDuration.WithLabelValues(c.Request().Method, path).
				Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// ObserveCardMove counts a board move attempt.
func (m *Metrics) ObserveCardMove(column, outcome string) {
	m.cardMovesTotal.WithLabelValues(column, outcome).Inc()
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
