// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness together with the current feature flag values

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"content-normalizer-api/api/dto/mappers"
	"content-normalizer-api/api/dto/responses"
	"content-normalizer-api/pkg/featureflags"
)

// HealthHandler serves GET /health
type HealthHandler struct {
	flags featureflags.Manager
}

// NewHealthHandler creates a health handler; a nil manager reports defaults
func NewHealthHandler(flags featureflags.Manager) *HealthHandler {
	return &HealthHandler{flags: flags}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	flags := featureflags.Defaults()
	if h.flags != nil {
		flags = h.flags.GetAllFlags()
	}
	return &HealthOutput{Body: mappers.ToHealthResponse(flags)}, nil
}
