// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// InvalidURLError is returned when the target is not a well-formed absolute URL
type InvalidURLError struct {
	URL    string
	Reason string
}

// Error implements the error interface
func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: %s", e.URL, e.Reason)
}

// NetworkError represents a fetch that produced no response
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the fetch failed because it ran out of time
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// HTTPError represents a non-2xx response from the origin
type HTTPError struct {
	URL        string
	StatusCode int
	StatusText string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error from %s: %d - %s", e.URL, e.StatusCode, e.StatusText)
}

// ParseError represents content that could not be parsed as its detected kind
type ParseError struct {
	Kind    string
	Details string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s content: %s", e.Kind, e.Details)
}

// Unwrap returns the underlying parser error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidURL checks if an error is an InvalidURLError
func IsInvalidURL(err error) bool {
	var urlErr *InvalidURLError
	return errors.As(err, &urlErr)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsHTTP checks if an error is an HTTPError
func IsHTTP(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// Code returns a short machine-readable name for the error kind
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case IsInvalidURL(err):
		return "invalid_url"
	case IsNetwork(err):
		return "network_error"
	case IsHTTP(err):
		return "http_error"
	case IsParse(err):
		return "parse_error"
	case IsValidation(err):
		return "validation_error"
	case IsNotFound(err):
		return "not_found"
	default:
		return "internal_error"
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
