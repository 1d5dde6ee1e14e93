package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

// WithDetails replaces the details of the response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithFieldDetails renders one "field: message" detail per field, sorted by field
func WithFieldDetails(fields map[string]string) ErrorOption {
	return func(er *ErrorResponse) {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		details := make([]string, 0, len(names))
		for _, name := range names {
			details = append(details, fmt.Sprintf("%s: %s", name, fields[name]))
		}
		er.Error.Details = details
	}
}

// WithMessage overrides the default message of the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the response for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// Internal hides err behind a generic code. Expired or cancelled contexts
// are reported as SYSTEM_003 so callers know a retry may succeed.
// err itself never reaches the response and should be logged by the caller.
func Internal(err error, traceID string) *ErrorResponse {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return NewErrorResponse(SystemServiceUnavailable, traceID)
	}
	return NewErrorResponse(SystemInternalError, traceID)
}

var statusByCode = map[ErrorCode]int{
	ValidationGeneral:         http.StatusBadRequest,
	ValidationRequiredField:   http.StatusBadRequest,
	ValidationInvalidFormat:   http.StatusBadRequest,
	ValidationOutOfRange:      http.StatusBadRequest,
	ValidationInvalidCurrency: http.StatusBadRequest,
	ValidationInvalidPeriod:   http.StatusBadRequest,
	ValidationInvalidDate:     http.StatusBadRequest,
	AnalyticsUnsupportedModel: http.StatusBadRequest,
	AnalyticsInvalidHorizon:   http.StatusBadRequest,

	AuthMissingToken:           http.StatusUnauthorized,
	AuthExpiredToken:           http.StatusUnauthorized,
	AuthInvalidTokenFormat:     http.StatusUnauthorized,
	AuthInsufficientPermission: http.StatusForbidden,

	AnalyticsUnknownView:  http.StatusNotFound,
	AnalyticsGoalNotFound: http.StatusNotFound,
	SystemRouteNotFound:   http.StatusNotFound,

	// the request is well formed but the ledger history cannot answer it
	AnalyticsInsufficientData: http.StatusUnprocessableEntity,
	AnalyticsGoalExpired:      http.StatusUnprocessableEntity,
	AnalyticsNoModels:         http.StatusUnprocessableEntity,

	SystemRateLimitExceeded: http.StatusTooManyRequests,

	SystemServiceUnavailable: http.StatusServiceUnavailable,
	AnalyticsNotReady:        http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the status code sent with code. Unlisted codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
