package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"chat-contracts/validation"
)

// ErrorPayload conveys a failure across the process boundary. Code is the
// stable branch key; Message is safe to display; Details carries optional
// structured context such as the per-field issue list.
type ErrorPayload struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode"`
	Details    any       `json:"details,omitempty"`
}

// Success is the success arm of the response envelope. RequestID is
// mandatory so clients can correlate responses with traces.
type Success[T any] struct {
	OK         bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Payload    T      `json:"payload"`
	RequestID  string `json:"requestId"`
}

// Failure is the failure arm. RequestID is optional because a request can
// fail before an id was assigned.
type Failure struct {
	OK         bool         `json:"success"`
	StatusCode int          `json:"statusCode"`
	Error      ErrorPayload `json:"error"`
	RequestID  string       `json:"requestId,omitempty"`
}

// NewRequestID mints a correlation id for the success envelope.
func NewRequestID() string {
	return uuid.NewString()
}

// Ok wraps a payload in the success arm of the envelope.
func Ok[T any](statusCode int, payload T, requestID string) Success[T] {
	return Success[T]{
		OK:         true,
		StatusCode: statusCode,
		Payload:    payload,
		RequestID:  requestID,
	}
}

// Fail wraps an error code and message in the failure arm. The envelope
// status defaults to the code's conventional HTTP status.
func Fail(code ErrorCode, message string) Failure {
	return Failure{
		OK:         false,
		StatusCode: code.HTTPStatus(),
		Error: ErrorPayload{
			Code:       code,
			Message:    message,
			StatusCode: code.HTTPStatus(),
		},
	}
}

// issueDetail is the wire form of one validation issue.
type issueDetail struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationFailure renders a validation issue list as the conventional
// VALIDATION_ERROR failure: statusCode 400, one detail entry per issue.
func ValidationFailure(issues validation.Issues) Failure {
	f := Fail(CodeValidationError, "The request did not pass validation.")
	f.StatusCode = http.StatusBadRequest
	f.Error.StatusCode = http.StatusBadRequest
	f.Error.Details = lo.Map(issues, func(issue validation.Issue, _ int) issueDetail {
		return issueDetail{Path: issue.Path, Message: issue.Message}
	})
	return f
}
