package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"ledger-analytics/internal/errors"
	"ledger-analytics/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

var codeByStatus = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInsufficientPermission,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      errors.SystemRouteNotFound,
	http.StatusRequestEntityTooLarge: errors.ValidationOutOfRange,
	http.StatusUnsupportedMediaType:  errors.ValidationInvalidFormat,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// CustomHTTPErrorHandler renders errors that escaped a handler, including
// echo's own routing errors, as ErrorResponse bodies.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := toErrorResponse(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "request failed",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"status", status,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		slog.Error("failed to send error response", "trace_id", traceID, "error", sendErr)
	}
}

func toErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code, ok := codeByStatus[httpErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprint(httpErr.Message))), httpErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		response := errors.NewErrorResponse(errors.ValidationGeneral, traceID,
			errors.WithFieldDetails(validation.Messages(validationErrs)))
		return response, http.StatusBadRequest
	}

	response := errors.Internal(err, traceID)
	return response, response.GetHTTPStatus()
}
