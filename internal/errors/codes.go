package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidCurrency ErrorCode = "VALIDATION_005"
	ValidationInvalidPeriod   ErrorCode = "VALIDATION_006"
	ValidationInvalidDate     ErrorCode = "VALIDATION_007"
)

// Analytics error codes (ANALYTICS_*)
const (
	AnalyticsInsufficientData ErrorCode = "ANALYTICS_001"
	AnalyticsRefreshFailed    ErrorCode = "ANALYTICS_002"
	AnalyticsGoalExpired      ErrorCode = "ANALYTICS_003"
	AnalyticsUnknownView      ErrorCode = "ANALYTICS_004"
	AnalyticsNoModels         ErrorCode = "ANALYTICS_005"
	AnalyticsUnsupportedModel ErrorCode = "ANALYTICS_006"
	AnalyticsInvalidHorizon   ErrorCode = "ANALYTICS_007"
	AnalyticsGoalNotFound     ErrorCode = "ANALYTICS_008"
	AnalyticsNotReady         ErrorCode = "ANALYTICS_009"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidCurrency: "Invalid ISO 4217 currency code",
	ValidationInvalidPeriod:   "Invalid period, expected YYYY-MM",
	ValidationInvalidDate:     "Invalid date format or range",

	// Analytics errors
	AnalyticsInsufficientData: "Not enough history to compute this result",
	AnalyticsRefreshFailed:    "Aggregate refresh failed, previous views are still served",
	AnalyticsGoalExpired:      "Goal target date has passed",
	AnalyticsUnknownView:      "Aggregate view not found",
	AnalyticsNoModels:         "No forecast model has enough data",
	AnalyticsUnsupportedModel: "Unsupported forecast model",
	AnalyticsInvalidHorizon:   "Forecast horizon is out of range",
	AnalyticsGoalNotFound:     "Goal not found",
	AnalyticsNotReady:         "Aggregates have not been refreshed yet",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
