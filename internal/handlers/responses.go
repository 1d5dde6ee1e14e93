package handlers

import (
	"log/slog"

	"ledger-analytics/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers never build error bodies themselves: expected failures go through
// SendError with a catalogued code, anything else through SendSystemError.

// TraceIDContextKey is where the request ID middleware stores the trace ID
const TraceIDContextKey = "trace_id"

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the ErrorResponse of code with the status the code maps to
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs err and answers with a generic code that reveals nothing about it
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	response := errors.Internal(err, traceID)
	slog.Error("request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"trace_id", traceID,
		"error", err,
	)
	return c.JSON(response.GetHTTPStatus(), response)
}
