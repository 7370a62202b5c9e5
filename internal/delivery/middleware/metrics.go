package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	deliverycontext "recipebook/internal/delivery/context"
	"recipebook/internal/infra/metrics"
)

// unmatchedRoute labels requests that did not hit a registered route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count and latency per route
type MetricsMiddleware struct {
	metrics *metrics.Metrics
	logger  *slog.Logger
	debug   bool
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics, logger *slog.Logger, debug bool) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: m,
		logger:  logger,
		debug:   debug,
	}
}

// Handle processes request metrics
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Commit the error response here so the recorded status is the one the client sees
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		latency := time.Since(start)
		status := c.Response().Status
		m.metrics.ObserveRequest(c.Request().Method, route, strconv.Itoa(status), latency.Seconds())

		if m.debug {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Request measured",
				slog.String("route", route),
				slog.Int("status", status),
				slog.Duration("latency", latency),
			)
		}

		return nil
	}
}
