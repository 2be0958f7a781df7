package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingKey       ErrorCode = "AUTH_001"
	AuthInvalidKeyFormat ErrorCode = "AUTH_002"
	AuthInvalidKey       ErrorCode = "AUTH_003"
	AuthRevokedKey       ErrorCode = "AUTH_004"
	AuthExpiredKey       ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationMalformedBody ErrorCode = "VALIDATION_005"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound ErrorCode = "EXPENSE_001"
)

// Routing error codes (ROUTE_*)
const (
	RouteNotFound         ErrorCode = "ROUTE_001"
	RouteMethodNotAllowed ErrorCode = "ROUTE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRequestTooLarge    ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingKey:       "Authentication credentials were not provided",
	AuthInvalidKeyFormat: "Invalid authorization header format, expected 'Api-Key <key>'",
	AuthInvalidKey:       "Invalid API key",
	AuthRevokedKey:       "API key has been revoked",
	AuthExpiredKey:       "API key has expired",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",
	ValidationMalformedBody: "Request body is not valid JSON",

	// Expense errors
	ExpenseNotFound: "Expense not found",

	// Routing errors
	RouteNotFound:         "Resource not found",
	RouteMethodNotAllowed: "Method not allowed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRequestTooLarge:    "Request body too large",
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
