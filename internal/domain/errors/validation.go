package errors

import (
	"net/http"
	"strings"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Param string // Input field name as sent by the client, e.g. "email"
	Msg   string // Human readable reason
}

// ValidationError is returned when request input fails validation before any
// persistence call. It carries one entry per rejected field.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a validation error for the given fields
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return ErrValidationFailed.Message()
	}

	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Param+": "+f.Msg)
	}

	return ErrValidationFailed.Message() + ": " + strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the field messages joined together
func (e *ValidationError) Details() string {
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Msg)
	}

	return strings.Join(msgs, "; ")
}

// Fields returns the rejected fields in declaration order
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}
