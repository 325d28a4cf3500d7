// ABOUTME: Error types and handling for the normalizer library
// ABOUTME: Provides structured errors with context for library operations

package normalizer

import (
	"fmt"

	cerrors "content-normalizer-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a bad URL or argument
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNetwork indicates the fetch produced no response
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeHTTP indicates the origin answered with a non-2xx status
	ErrorTypeHTTP ErrorType = "http"

	// ErrorTypeParsing indicates the content could not be parsed
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsType reports whether err is a library error of the given type
func IsType(err error, errType ErrorType) bool {
	libErr, ok := err.(*Error)
	return ok && libErr.Type == errType
}

// wrapError converts core errors into library errors, keeping the cause
func wrapError(err error, url string) error {
	if err == nil {
		return nil
	}

	var errType ErrorType
	switch {
	case cerrors.IsInvalidURL(err), cerrors.IsValidation(err):
		errType = ErrorTypeValidation
	case cerrors.IsNetwork(err):
		errType = ErrorTypeNetwork
	case cerrors.IsHTTP(err):
		errType = ErrorTypeHTTP
	case cerrors.IsParse(err):
		errType = ErrorTypeParsing
	default:
		errType = ErrorTypeInternal
	}

	return NewError(errType, "normalizing content failed").
		WithCause(err).
		WithContext("url", url)
}
