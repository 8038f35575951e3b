package middleware

import (
	"backoffice/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// NewMetricsMiddleware records every request on the route template it matched.
func NewMetricsMiddleware(m *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			done := m.Start()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = StatusOf(err)
			}
			path := c.Path()
			if path == "" {
				path = unmatchedRoute
			}
			done(c.Request().Method, path, status)

			return err
		}
	}
}
