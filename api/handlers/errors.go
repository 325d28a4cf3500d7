// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"content-normalizer-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsInvalidURL(err) || errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		// Map upstream status codes to our API status codes
		switch {
		case httpErr.StatusCode == http.StatusNotFound:
			return huma.Error404NotFound(err.Error())
		case httpErr.StatusCode == http.StatusTooManyRequests:
			return huma.Error429TooManyRequests("Rate limited by upstream server", err)
		case httpErr.StatusCode >= 500:
			return huma.Error502BadGateway(fmt.Sprintf("Upstream server error (%d)", httpErr.StatusCode), err)
		case httpErr.StatusCode >= 400:
			return huma.Error400BadRequest("Upstream rejected the request", err)
		default:
			return huma.Error502BadGateway("Unexpected upstream response", err)
		}
	}

	var netErr *errors.NetworkError
	if stderrors.As(err, &netErr) {
		if netErr.Timeout() {
			return huma.Error504GatewayTimeout("Upstream request timed out", err)
		}
		return huma.Error502BadGateway("Failed to fetch upstream content", err)
	}

	if errors.IsParse(err) {
		return huma.Error422UnprocessableEntity(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
