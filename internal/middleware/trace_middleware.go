package middleware

import (
	"github.com/KothuruDhansukh/ECO-MART/pkg/trace"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderTraceID = "X-Trace-Id"

// TraceID puts a trace id on the request context, reusing the caller's header when present.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderTraceID)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			req := c.Request()
			c.SetRequest(req.WithContext(trace.WithID(req.Context(), id)))
			c.Response().Header().Set(HeaderTraceID, id)

			return next(c)
		}
	}
}
