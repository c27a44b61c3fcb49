// Package api defines the boundary identifiers of the chat API: the closed
// error-code taxonomy, the response envelope, and the SSE event names.
// Identifiers are stable wire values and must never be renamed.
package api

import "net/http"

// ErrorCode is a machine-readable identifier carried in every error payload.
// Clients branch on the code, not on the human-readable message.
type ErrorCode string

const (
	// Generic codes.
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeConflict     ErrorCode = "CONFLICT"

	// Validation and bad-request codes.
	CodeValidationError             ErrorCode = "VALIDATION_ERROR"
	CodeBadRequest                  ErrorCode = "BAD_REQUEST"
	CodeUniqueConstraintViolation   ErrorCode = "UNIQUE_CONSTRAINT_VIOLATION"
	CodeRequiredConstraintViolation ErrorCode = "REQUIRED_CONSTRAINT_VIOLATION"
	CodeRangeError                  ErrorCode = "RANGE_ERROR"
	CodeValueTooLong                ErrorCode = "VALUE_TOO_LONG"
	CodeForeignKeyViolation         ErrorCode = "FOREIGN_KEY_VIOLATION"
	CodeInvalidValue                ErrorCode = "INVALID_VALUE"
	CodeIncorrectPassword           ErrorCode = "INCORRECT_PASSWORD"

	// Auth codes.
	CodeInvalidToken           ErrorCode = "INVALID_TOKEN"
	CodeExpiredToken           ErrorCode = "EXPIRED_TOKEN"
	CodeAuthenticationRequired ErrorCode = "AUTHENTICATION_REQUIRED"
	CodeMissingCSRFHeader      ErrorCode = "MISSING_CSRF_HEADER"
	CodeMissingCSRFCookie      ErrorCode = "MISSING_CSRF_COOKIE"
	CodeCSRFTokenMismatch      ErrorCode = "CSRF_TOKEN_MISMATCH"

	// Server codes. Never produced by the contracts layer, only represented.
	CodeInternalServerError     ErrorCode = "INTERNAL_SERVER_ERROR"
	CodeDatabaseError           ErrorCode = "DATABASE_ERROR"
	CodeDatabaseConnectionError ErrorCode = "DATABASE_CONNECTION_ERROR"
	CodeDatabaseValidationError ErrorCode = "DATABASE_VALIDATION_ERROR"
)

// httpStatus is the conventional transport status per code. The envelope
// still carries its own statusCode, so the two can disagree in principle.
var httpStatus = map[ErrorCode]int{
	CodeNotFound:     http.StatusNotFound,
	CodeUnauthorized: http.StatusUnauthorized,
	CodeForbidden:    http.StatusForbidden,
	CodeConflict:     http.StatusConflict,

	CodeValidationError:             http.StatusBadRequest,
	CodeBadRequest:                  http.StatusBadRequest,
	CodeUniqueConstraintViolation:   http.StatusConflict,
	CodeRequiredConstraintViolation: http.StatusBadRequest,
	CodeRangeError:                  http.StatusBadRequest,
	CodeValueTooLong:                http.StatusBadRequest,
	CodeForeignKeyViolation:         http.StatusConflict,
	CodeInvalidValue:                http.StatusBadRequest,
	CodeIncorrectPassword:           http.StatusUnauthorized,

	CodeInvalidToken:           http.StatusUnauthorized,
	CodeExpiredToken:           http.StatusUnauthorized,
	CodeAuthenticationRequired: http.StatusUnauthorized,
	CodeMissingCSRFHeader:      http.StatusForbidden,
	CodeMissingCSRFCookie:      http.StatusForbidden,
	CodeCSRFTokenMismatch:      http.StatusForbidden,

	CodeInternalServerError:     http.StatusInternalServerError,
	CodeDatabaseError:           http.StatusInternalServerError,
	CodeDatabaseConnectionError: http.StatusInternalServerError,
	CodeDatabaseValidationError: http.StatusInternalServerError,
}

// Valid reports whether c belongs to the closed code set.
func (c ErrorCode) Valid() bool {
	_, ok := httpStatus[c]
	return ok
}

// HTTPStatus returns the conventional HTTP status for the code.
// Unknown codes map to 500 so a bad code never leaks as a success.
func (c ErrorCode) HTTPStatus() int {
	if status, ok := httpStatus[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}
