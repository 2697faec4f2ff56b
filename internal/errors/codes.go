package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidMode   ErrorCode = "VALIDATION_006"
)

// KPI error codes (KPI_*)
const (
	KPINoData         ErrorCode = "KPI_001"
	KPIDatasetEmpty   ErrorCode = "KPI_002"
	KPIInvalidOptions ErrorCode = "KPI_003"
)

// Query error codes (QUERY_*)
const (
	QueryRejected          ErrorCode = "QUERY_001"
	QueryExecutionFailed   ErrorCode = "QUERY_002"
	QueryInvalidSpec       ErrorCode = "QUERY_003"
	QueryEngineUnavailable ErrorCode = "QUERY_004"
	QueryGenerationFailed  ErrorCode = "QUERY_005"
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
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date, expected YYYY-MM-DD",
	ValidationInvalidMode:   "Invalid engine mode, expected auto, sql or tabular",

	// KPI errors
	KPINoData:         "No data for the requested day",
	KPIDatasetEmpty:   "The dataset has no records",
	KPIInvalidOptions: "Invalid detection options",

	// Query errors
	QueryRejected:          "Only single read-only SELECT statements are allowed",
	QueryExecutionFailed:   "Query execution failed",
	QueryInvalidSpec:       "The generated query specification is invalid",
	QueryEngineUnavailable: "No query engine is available",
	QueryGenerationFailed:  "The language model could not generate a query",

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
