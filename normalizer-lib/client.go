// ABOUTME: Main client for the normalizer library
// ABOUTME: Offers a clean API for using core functionality without HTTP server dependencies

package normalizer

import (
	"context"
	"errors"
	"sync"
	"time"

	"content-normalizer-api/core/domain"
	"content-normalizer-api/core/interfaces"
	core "content-normalizer-api/core/normalizer"
)

// Result is a normalized document and its metadata
type Result = domain.NormalizedResult

// BatchItem is the outcome for one URL of NormalizeBatch
type BatchItem = domain.BatchItem

// ContentKind names the content families NormalizeContent accepts
type ContentKind = domain.ContentKind

// Client is the main entry point for the normalizer library
type Client struct {
	service *core.NormalizerService
	config  Config

	mu     sync.Mutex
	closed bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if config.HTTPClient == nil {
		config.HTTPClient = DefaultHTTPClient(config.Timeout)
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
		Flags:      config.Flags,
	}

	return &Client{
		service: core.NewNormalizerService(deps, config.CacheTTL),
		config:  config,
	}, nil
}

// Close releases resources opened by the client's options
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	for _, closer := range c.config.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Normalize fetches url and converts its content into a normalized tree
func (c *Client) Normalize(ctx context.Context, url string) (*Result, error) {
	if c.isClosed() {
		return nil, ErrClientClosed
	}

	result, err := c.service.FetchAndNormalize(ctx, url)
	if err != nil {
		return nil, wrapError(err, url)
	}
	return result, nil
}

// NormalizeBatch normalizes several URLs concurrently, preserving input order.
// Per-URL failures are reported on each item.
func (c *Client) NormalizeBatch(ctx context.Context, urls []string) ([]BatchItem, error) {
	if c.isClosed() {
		return nil, ErrClientClosed
	}
	if len(urls) == 0 {
		return nil, NewError(ErrorTypeValidation, "at least one URL is required")
	}
	return c.service.FetchAndNormalizeBatch(ctx, urls), nil
}

// NormalizeContent normalizes a body that is already in hand. An empty kind
// is detected from contentType and the body.
func (c *Client) NormalizeContent(ctx context.Context, kind ContentKind, contentType string, body []byte) (*Result, error) {
	if c.isClosed() {
		return nil, ErrClientClosed
	}

	if kind == "" {
		kind = core.DetectKind(contentType, body)
	}

	doc := &domain.RemoteDocument{
		Kind:    kind,
		Headers: map[string]string{"Content-Type": contentType},
		Body:    body,
	}

	data, err := c.service.Normalize(ctx, doc)
	if err != nil {
		return nil, wrapError(err, "")
	}

	return &Result{
		Data: data,
		Metadata: domain.ResultMetadata{
			ContentType:   kind,
			ContentLength: len(body),
			Timestamp:     time.Now().UTC(),
			MimeType:      contentType,
		},
	}, nil
}

// Evict drops any cached result for url
func (c *Client) Evict(ctx context.Context, url string) error {
	if c.isClosed() {
		return ErrClientClosed
	}
	return wrapError(c.service.Evict(ctx, url), url)
}

// Common errors
var (
	// ErrClientClosed is returned when operations are attempted on a closed client
	ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")
)
