// FilePath: internal/errors/errors.go
package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// API-surface error types
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeInternal   ErrorType = "internal"

	// Device-side failure kinds. These are handled locally where the device
	// call fails (logged and swallowed); they reach the API surface only as
	// diagnostics, never as propagated errors.
	ErrorTypeNetwork         ErrorType = "network"
	ErrorTypeHTTPStatus      ErrorType = "http_status"
	ErrorTypeParse           ErrorType = "parse"
	ErrorTypeCommandRejected ErrorType = "command_rejected"
)

// APIError represents a structured API error
type APIError struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Code      int       `json:"code"`
	RequestID string    `json:"request_id,omitempty"`
	Details   any       `json:"details,omitempty"`
	err       error     // Internal error for logging
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped internal error
func (e *APIError) Unwrap() error {
	return e.err
}

// WithRequestID adds a request ID to the error
func (e *APIError) WithRequestID(id string) *APIError {
	e.RequestID = id
	return e
}

// WithDetails adds additional details to the error
func (e *APIError) WithDetails(details any) *APIError {
	e.Details = details
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeValidation,
		Message: msg,
		Code:    http.StatusBadRequest,
		err:     err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeNotFound,
		Message: msg,
		Code:    http.StatusNotFound,
		err:     err,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeInternal,
		Message: msg,
		Code:    http.StatusInternalServerError,
		err:     err,
	}
}

// NewNetworkError creates an error for a connection-level device failure
// (timeout, DNS, connection refused).
func NewNetworkError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeNetwork,
		Message: msg,
		Code:    http.StatusBadGateway,
		err:     err,
	}
}

// NewHTTPStatusError creates an error for a non-200 device response.
func NewHTTPStatusError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeHTTPStatus,
		Message: msg,
		Code:    http.StatusBadGateway,
		err:     err,
	}
}

// NewParseError creates an error for a malformed device payload.
func NewParseError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeParse,
		Message: msg,
		Code:    http.StatusBadGateway,
		err:     err,
	}
}

// NewCommandRejectedError creates an error for a control command the device
// answered with 200 but a non-success status field.
func NewCommandRejectedError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeCommandRejected,
		Message: msg,
		Code:    http.StatusBadGateway,
		err:     err,
	}
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	return typeOf(err) == ErrorTypeNotFound
}

// IsValidation checks if an error is a Validation error
func IsValidation(err error) bool {
	return typeOf(err) == ErrorTypeValidation
}

// IsCommandRejected checks if an error is a CommandRejected error
func IsCommandRejected(err error) bool {
	return typeOf(err) == ErrorTypeCommandRejected
}

// IsParse checks if an error is a Parse error
func IsParse(err error) bool {
	return typeOf(err) == ErrorTypeParse
}

// FailureKind returns the metric/log label for a device failure. Errors that
// carry no recognized type are reported as internal.
func FailureKind(err error) string {
	switch t := typeOf(err); t {
	case ErrorTypeNetwork, ErrorTypeHTTPStatus, ErrorTypeParse, ErrorTypeCommandRejected:
		return string(t)
	default:
		return string(ErrorTypeInternal)
	}
}

func typeOf(err error) ErrorType {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type
	}
	return ""
}
