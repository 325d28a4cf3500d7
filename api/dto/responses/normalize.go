// ABOUTME: Response DTOs for the normalize and health endpoints
// ABOUTME: Wraps domain results with batch summaries for API consumers

package responses

import "content-normalizer-api/core/domain"

// NormalizeBatchResponse is the body returned by POST /normalize
type NormalizeBatchResponse struct {
	Results   []domain.BatchItem `json:"results" doc:"One entry per requested URL, in request order"`
	Succeeded int                `json:"succeeded" doc:"Number of URLs normalized successfully"`
	Failed    int                `json:"failed" doc:"Number of URLs that failed"`
}

// HealthResponse is the body returned by GET /health
type HealthResponse struct {
	Status string          `json:"status" example:"ok" doc:"Service status"`
	Flags  map[string]bool `json:"flags" doc:"Current feature flag values"`
}
