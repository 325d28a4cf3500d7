// ABOUTME: Normalize handlers for the Huma API
// ABOUTME: Provides HTTP endpoints to fetch, normalize and evict remote documents

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"content-normalizer-api/api/dto/mappers"
	"content-normalizer-api/api/dto/requests"
	"content-normalizer-api/api/dto/responses"
	"content-normalizer-api/core/domain"
	"content-normalizer-api/core/interfaces"
)

// NormalizeHandler handles normalize-related HTTP requests
type NormalizeHandler struct {
	service interfaces.NormalizerService
}

// NewNormalizeHandler creates a new normalize handler
func NewNormalizeHandler(service interfaces.NormalizerService) *NormalizeHandler {
	return &NormalizeHandler{service: service}
}

// RegisterRoutes registers all normalize-related routes
func (h *NormalizeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "normalize",
		Method:      http.MethodGet,
		Path:        "/normalize",
		Summary:     "Normalize a single URL",
		Description: "Fetches the URL, classifies it as JSON, XML, HTML or unknown, and returns a uniform JSON tree",
		Tags:        []string{"Normalize"},
	}, h.Normalize)

	huma.Register(api, huma.Operation{
		OperationID: "normalizeBatch",
		Method:      http.MethodPost,
		Path:        "/normalize",
		Summary:     "Normalize several URLs",
		Description: "Normalizes up to 50 URLs concurrently; each result reports its own error",
		Tags:        []string{"Normalize"},
	}, h.NormalizeBatch)

	huma.Register(api, huma.Operation{
		OperationID:   "evictNormalized",
		Method:        http.MethodDelete,
		Path:          "/normalize/cache",
		Summary:       "Evict a cached result",
		Description:   "Removes any cached normalized result for the URL",
		Tags:          []string{"Normalize"},
		DefaultStatus: http.StatusNoContent,
	}, h.Evict)
}

// NormalizeInput defines the input for the Normalize operation
type NormalizeInput struct {
	URL string `query:"url" required:"true" minLength:"1" doc:"Absolute http(s) URL to normalize"`
}

// NormalizeOutput defines the output for the Normalize operation
type NormalizeOutput struct {
	Body domain.NormalizedResult
}

// Normalize handles GET /normalize
func (h *NormalizeHandler) Normalize(ctx context.Context, input *NormalizeInput) (*NormalizeOutput, error) {
	result, err := h.service.FetchAndNormalize(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &NormalizeOutput{Body: *result}, nil
}

// NormalizeBatchInput defines the input for the NormalizeBatch operation
type NormalizeBatchInput struct {
	Body requests.NormalizeBatchRequest
}

// NormalizeBatchOutput defines the output for the NormalizeBatch operation
type NormalizeBatchOutput struct {
	Body responses.NormalizeBatchResponse
}

// NormalizeBatch handles POST /normalize
func (h *NormalizeHandler) NormalizeBatch(ctx context.Context, input *NormalizeBatchInput) (*NormalizeBatchOutput, error) {
	input.Body.Dedupe()
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("at least one non-empty URL is required")
	}

	items := h.service.FetchAndNormalizeBatch(ctx, input.Body.URLs)
	return &NormalizeBatchOutput{Body: mappers.ToBatchResponse(items)}, nil
}

// EvictInput defines the input for the Evict operation
type EvictInput struct {
	URL string `query:"url" required:"true" minLength:"1" doc:"URL whose cached result should be removed"`
}

// Evict handles DELETE /normalize/cache
func (h *NormalizeHandler) Evict(ctx context.Context, input *EvictInput) (*struct{}, error) {
	if err := h.service.Evict(ctx, input.URL); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}
