// ABOUTME: Normalizer service fetches remote content and converts it into a normalized tree
// ABOUTME: Handles URL validation, fetching, classification, conversion and result caching

package normalizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"content-normalizer-api/core/domain"
	cerrors "content-normalizer-api/core/errors"
	"content-normalizer-api/core/interfaces"
	"content-normalizer-api/pkg/featureflags"
)

const (
	// DefaultCacheTTL is used when the service is created with a zero TTL
	DefaultCacheTTL = 1 * time.Hour

	// maxConcurrentFetches bounds FetchAndNormalizeBatch
	maxConcurrentFetches = 10

	cacheKeyPrefix = "normalize:"

	unknownContentMessage = "Content type could not be determined; returning raw content"
)

// NormalizerService handles fetching and normalizing remote content
type NormalizerService struct {
	deps     interfaces.Dependencies
	cacheTTL time.Duration
}

// NewNormalizerService creates a new normalizer service instance
func NewNormalizerService(deps interfaces.Dependencies, cacheTTL time.Duration) *NormalizerService {
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &NormalizerService{
		deps:     deps,
		cacheTTL: cacheTTL,
	}
}

// ValidateURL checks that rawURL is an absolute http(s) URL with a host
func ValidateURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, &cerrors.InvalidURLError{URL: rawURL, Reason: "URL cannot be empty"}
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, &cerrors.InvalidURLError{URL: rawURL, Reason: err.Error()}
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, &cerrors.InvalidURLError{URL: rawURL, Reason: "URL must be absolute"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &cerrors.InvalidURLError{URL: rawURL, Reason: "unsupported scheme " + parsed.Scheme}
	}

	return parsed, nil
}

// FetchAndNormalize fetches targetURL once and converts the content
func (s *NormalizerService) FetchAndNormalize(ctx context.Context, targetURL string) (*domain.NormalizedResult, error) {
	parsed, err := ValidateURL(targetURL)
	if err != nil {
		return nil, err
	}
	target := parsed.String()

	// Check cache first
	if cached := s.getCachedResult(ctx, target); cached != nil {
		return cached, nil
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	doc, err := s.fetch(ctx, target)
	if err != nil {
		s.deps.Logger.Debug("Fetch failed", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return nil, err
	}

	data, err := s.Normalize(ctx, doc)
	if err != nil {
		s.deps.Logger.Warn("Failed to normalize content", map[string]interface{}{
			"url":   target,
			"kind":  doc.Kind.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	result := &domain.NormalizedResult{
		Data: data,
		Metadata: domain.ResultMetadata{
			URL:           target,
			ContentType:   doc.Kind,
			ContentLength: len(doc.Body),
			Timestamp:     time.Now().UTC(),
			MimeType:      doc.Header("Content-Type"),
			StatusCode:    doc.StatusCode,
			FeedType:      s.detectFeedType(ctx, doc),
		},
	}

	// Cache the result (ignore cache errors)
	_ = s.cacheResult(ctx, target, result)

	s.deps.Logger.Info("Normalized content", map[string]interface{}{
		"url":            target,
		"kind":           doc.Kind.String(),
		"content_length": len(doc.Body),
	})

	return result, nil
}

// fetch performs the single request and reads the body
func (s *NormalizerService) fetch(ctx context.Context, target string) (*domain.RemoteDocument, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, target)
	if err != nil {
		return nil, &cerrors.NetworkError{URL: target, Err: err}
	}
	defer resp.Body().Close()

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, &cerrors.HTTPError{
			URL:        target,
			StatusCode: status,
			StatusText: reasonPhrase(resp),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &cerrors.NetworkError{URL: target, Err: fmt.Errorf("reading body: %w", err)}
	}

	return &domain.RemoteDocument{
		URL:        target,
		Kind:       DetectKind(resp.Header("Content-Type"), body),
		Headers:    resp.Headers(),
		StatusCode: status,
		Body:       body,
	}, nil
}

// reasonPhrase returns the reason the origin sent with its status code,
// falling back to the canonical text when the status line carries none
func reasonPhrase(resp interfaces.Response) string {
	code := strconv.Itoa(resp.StatusCode())
	if reason := strings.TrimSpace(strings.TrimPrefix(resp.Status(), code)); reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode())
}

// Normalize converts an already fetched document. The kind is detected when
// doc.Kind is empty; doc itself is not modified.
func (s *NormalizerService) Normalize(ctx context.Context, doc *domain.RemoteDocument) (interface{}, error) {
	kind := doc.Kind
	if kind == "" {
		kind = DetectKind(doc.Header("Content-Type"), doc.Body)
	}

	switch kind {
	case domain.KindJSON:
		return parseJSON(doc.Body)
	case domain.KindXML:
		return projectXML(doc.Body)
	case domain.KindHTML:
		projector := &htmlProjector{
			logger: s.deps.Logger,
			options: htmlOptions{
				openGraph:   featureflags.Enabled(ctx, s.deps.Flags, featureflags.OpenGraphEnabled),
				readability: featureflags.Enabled(ctx, s.deps.Flags, featureflags.ReadabilityEnabled),
			},
		}
		return projector.project(doc.Body, doc.URL)
	default:
		return normalizeUnknown(doc.Body), nil
	}
}

// normalizeUnknown tries JSON as a last resort, otherwise passes the raw content through
func normalizeUnknown(body []byte) interface{} {
	if data, err := parseJSON(body); err == nil {
		return data
	}
	return map[string]interface{}{
		"rawContent":  strings.ToValidUTF8(string(body), "�"),
		"contentType": domain.KindUnknown.String(),
		"message":     unknownContentMessage,
	}
}

// detectFeedType reports rss, atom or json when the payload is a syndication feed
func (s *NormalizerService) detectFeedType(ctx context.Context, doc *domain.RemoteDocument) string {
	if doc.Kind != domain.KindXML && doc.Kind != domain.KindJSON {
		return ""
	}
	if !featureflags.Enabled(ctx, s.deps.Flags, featureflags.FeedDetectionEnabled) {
		return ""
	}

	switch gofeed.DetectFeedType(bytes.NewReader(doc.Body)) {
	case gofeed.FeedTypeRSS:
		return "rss"
	case gofeed.FeedTypeAtom:
		return "atom"
	case gofeed.FeedTypeJSON:
		// gofeed reports any JSON object here; require the JSON Feed version marker
		if bytes.Contains(doc.Body, []byte("jsonfeed.org/version")) {
			return "json"
		}
		return ""
	default:
		return ""
	}
}

// FetchAndNormalizeBatch normalizes several URLs concurrently, preserving order
func (s *NormalizerService) FetchAndNormalizeBatch(ctx context.Context, urls []string) []domain.BatchItem {
	results := make([]domain.BatchItem, len(urls))
	var wg sync.WaitGroup

	// Limit concurrency
	semaphore := make(chan struct{}, maxConcurrentFetches)

	for i, u := range urls {
		wg.Add(1)
		go func(idx int, targetURL string) {
			defer wg.Done()

			item := domain.BatchItem{URL: targetURL}

			select {
			case <-ctx.Done():
				item.Error = ctx.Err().Error()
				item.Code = cerrors.Code(ctx.Err())
				results[idx] = item
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			result, err := s.FetchAndNormalize(ctx, targetURL)
			if err != nil {
				item.Error = err.Error()
				item.Code = cerrors.Code(err)
			} else {
				item.Result = result
			}
			results[idx] = item
		}(i, u)
	}

	wg.Wait()
	return results
}

// Evict removes the cached result for targetURL
func (s *NormalizerService) Evict(ctx context.Context, targetURL string) error {
	parsed, err := ValidateURL(targetURL)
	if err != nil {
		return err
	}
	if s.deps.Cache == nil {
		return nil
	}
	return s.deps.Cache.Delete(ctx, cacheKey(parsed.String()))
}

func cacheKey(target string) string {
	return cacheKeyPrefix + target
}

func (s *NormalizerService) cachingEnabled(ctx context.Context) bool {
	return s.deps.Cache != nil && featureflags.Enabled(ctx, s.deps.Flags, featureflags.CacheEnabled)
}

// getCachedResult returns nil on a miss or an undecodable entry
func (s *NormalizerService) getCachedResult(ctx context.Context, target string) *domain.NormalizedResult {
	if !s.cachingEnabled(ctx) {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(target))
	if err != nil || data == nil {
		if err != nil && !cerrors.IsNotFound(err) {
			s.deps.Logger.Warn("Cache read failed", map[string]interface{}{
				"url":   target,
				"error": err.Error(),
			})
		}
		return nil
	}

	var result domain.NormalizedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return &result
}

// cacheResult stores a result in cache
func (s *NormalizerService) cacheResult(ctx context.Context, target string, result *domain.NormalizedResult) error {
	if !s.cachingEnabled(ctx) {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.deps.Cache.Set(ctx, cacheKey(target), data, s.cacheTTL)
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
