package middleware

import (
	"myTimberMarket/business/recommendation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderRequestID = "X-Request-ID"

// TraceID reuses the caller's X-Request-ID or generates one, echoes it on the
// response and makes it available to services through the request context.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			traceID := req.Header.Get(HeaderRequestID)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Response().Header().Set(HeaderRequestID, traceID)
			c.Set("trace_id", traceID)
			c.SetRequest(req.WithContext(recommendation.ContextWithTraceID(req.Context(), traceID)))

			return next(c)
		}
	}
}
