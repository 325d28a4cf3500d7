// ABOUTME: Mappers from domain batch results to API response DTOs
// ABOUTME: Computes success and failure counts for batch responses

package mappers

import (
	"content-normalizer-api/api/dto/responses"
	"content-normalizer-api/core/domain"
	"content-normalizer-api/pkg/featureflags"
)

// ToBatchResponse summarizes batch items; a nil slice becomes an empty list
func ToBatchResponse(items []domain.BatchItem) responses.NormalizeBatchResponse {
	resp := responses.NormalizeBatchResponse{Results: items}
	if resp.Results == nil {
		resp.Results = []domain.BatchItem{}
	}

	for _, item := range resp.Results {
		if item.Error == "" && item.Result != nil {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	return resp
}

// ToHealthResponse reports the service as up with the given flag values
func ToHealthResponse(flags map[featureflags.FeatureFlag]bool) responses.HealthResponse {
	out := make(map[string]bool, len(flags))
	for flag, enabled := range flags {
		out[string(flag)] = enabled
	}
	return responses.HealthResponse{Status: "ok", Flags: out}
}
