package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for fetching remote content.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// Get performs a single HTTP GET request to the specified URL.
	// Returns a Response or an error if no response was received.
	// Non-2xx responses are returned as a Response, not as an error.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Status returns the status line as sent, e.g. "404 Not Found".
	// Servers may send a reason phrase other than the canonical one.
	Status() string

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string

	// Headers returns every response header, multiple values joined by ", ".
	Headers() map[string]string
}
