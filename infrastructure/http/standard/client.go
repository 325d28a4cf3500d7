// ABOUTME: Standard HTTP client implementation for fetching remote documents
// ABOUTME: Performs one timeout-bounded GET per call with a capped response body

package standard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"content-normalizer-api/core/interfaces"
)

const (
	// DefaultUserAgent is sent when no user agent is configured
	DefaultUserAgent = "ContentNormalizer/1.0"

	// DefaultMaxBodyBytes caps a single response body
	DefaultMaxBodyBytes int64 = 10 << 20

	defaultAccept = "application/json, application/xml;q=0.9, text/html;q=0.9, */*;q=0.8"
)

// ErrBodyTooLarge is returned while reading a body that exceeds the configured cap
var ErrBodyTooLarge = errors.New("response body too large")

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *StandardHTTPClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodyBytes caps how much of a response body may be read.
// Zero or negative disables the cap.
func WithMaxBodyBytes(n int64) Option {
	return func(c *StandardHTTPClient) {
		c.maxBodyBytes = n
	}
}

// WithLogger logs every outgoing request at debug level
func WithLogger(logger interfaces.Logger) Option {
	return func(c *StandardHTTPClient) {
		if logger == nil {
			return
		}
		c.client.Transport = &LoggingRoundTripper{
			Transport: c.client.Transport,
			Logger:    logger,
		}
	}
}

// WithTransport replaces the underlying round tripper
func WithTransport(rt http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		c.client.Transport = rt
	}
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: http.DefaultTransport,
		},
		userAgent:    DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a single HTTP GET request. Non-2xx responses are returned
// as responses; only transport failures produce an error.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", defaultAccept)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	body := resp.Body
	if c.maxBodyBytes > 0 {
		body = newLimitedBody(resp.Body, c.maxBodyBytes)
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		status:     resp.Status,
		body:       body,
		headers:    resp.Header,
	}, nil
}

// limitedBody fails with ErrBodyTooLarge once more than limit bytes were read
type limitedBody struct {
	reader io.Reader
	closer io.Closer
	limit  int64
	read   int64
}

func newLimitedBody(rc io.ReadCloser, limit int64) *limitedBody {
	return &limitedBody{
		reader: io.LimitReader(rc, limit+1),
		closer: rc,
		limit:  limit,
	}
}

func (b *limitedBody) Read(p []byte) (int, error) {
	n, err := b.reader.Read(p)
	b.read += int64(n)
	if b.read > b.limit {
		return n - int(b.read-b.limit), fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, b.limit)
	}
	return n, err
}

func (b *limitedBody) Close() error {
	return b.closer.Close()
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	status     string
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Status returns the status line, e.g. "200 OK"
func (r *httpResponse) Status() string {
	return r.status
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// Headers returns all headers, joining repeated values with ", "
func (r *httpResponse) Headers() map[string]string {
	headers := make(map[string]string, len(r.headers))
	for k, v := range r.headers {
		headers[k] = strings.Join(v, ", ")
	}
	return headers
}
