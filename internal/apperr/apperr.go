// Package apperr defines the error taxonomy surfaced by the HTTP layer.
// Business failures carry an explicit HTTP status and a machine code;
// anything that is not an *Error is reported as a generic 500.
package apperr

import "net/http"

// Error is a typed application failure. The zero Code is omitted from
// the wire shape.
type Error struct {
	Status  int      `json:"-"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Fields  []string `json:"errors,omitempty"` // field-level validation messages
}

func (e *Error) Error() string { return e.Message }

// New creates an Error with an explicit status and code.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Validation creates a 400 with optional field-level messages.
func Validation(message string, fields ...string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Message: message, Fields: fields}
}

// BadRequest creates a plain 400.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, "BAD_REQUEST", message)
}

// Unauthorized creates a 401.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, "AUTHENTICATION_ERROR", message)
}

// Forbidden creates a 403.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, "AUTHORIZATION_ERROR", message)
}

// NotFound creates a 404.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, "NOT_FOUND", message)
}

// Conflict creates a 409.
func Conflict(message string) *Error {
	return New(http.StatusConflict, "CONFLICT_ERROR", message)
}

// Internal creates a 500 with a caller-supplied message.
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
