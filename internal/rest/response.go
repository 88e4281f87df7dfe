package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/pkg/logger"
	"github.com/KothuruDhansukh/ECO-MART/pkg/trace"

	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a service error onto its status code.
func respondError(c echo.Context, err error) error {
	status := errorStatus(err)
	traceID := trace.IDFromContext(c.Request().Context())

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"trace_id", traceID,
			"path", c.Path(),
			"error", err,
		)
	}

	return c.JSON(status, ResponseError{Message: err.Error(), TraceID: traceID})
}
