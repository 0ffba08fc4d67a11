package apperrors

import (
	"errors"
	"sort"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound    = NewResourceNotFoundError("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Course errors
var (
	ErrCourseNotFound = NewResourceNotFoundError("course not found")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound = NewResourceNotFoundError("enrollment not found")
)

// NonFieldErrorsKey is the key under which errors not tied to a single field are reported.
const NonFieldErrorsKey = "non_field_errors"

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with a client-facing message
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// ValidationError collects per-field and non-field validation messages.
// It unwraps to ErrValidationFailed.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// NewFieldError returns a ValidationError holding a single field message.
func NewFieldError(field, message string) *ValidationError {
	return NewValidationError().Add(field, message)
}

// NewNonFieldError returns a ValidationError holding a single non-field message.
func NewNonFieldError(message string) *ValidationError {
	return NewValidationError().Add(NonFieldErrorsKey, message)
}

// Add appends a message for field.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// HasErrors reports whether any message was added.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implements error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, ", ")
}

// Unwrap implements errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
