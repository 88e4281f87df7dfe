package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/KothuruDhansukh/ECO-MART/pkg/logger"
	jsonres "github.com/KothuruDhansukh/ECO-MART/pkg/response"
	"github.com/KothuruDhansukh/ECO-MART/pkg/trace"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape handlers, mostly routing and binding errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled error",
			"trace_id", trace.IDFromContext(c.Request().Context()),
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	errCode := strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, jsonres.Error(errCode, message, nil))
	}
	if writeErr != nil {
		logger.Error("failed to write error response", "error", writeErr)
	}
}
