// ABOUTME: Logging round tripper for outgoing fetches
// ABOUTME: Records method, URL, status and duration of every upstream request

package standard

import (
	"net/http"
	"time"

	"content-normalizer-api/core/interfaces"
)

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	start := time.Now()

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
		"host":   req.Host,
	})

	resp, err := transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.Logger.Warn("Outgoing HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL.String(),
			"duration": duration.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"method":       req.Method,
		"url":          req.URL.String(),
		"status":       resp.StatusCode,
		"content_type": resp.Header.Get("Content-Type"),
		"duration":     duration.String(),
	})

	return resp, nil
}
