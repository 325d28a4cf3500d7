package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-normalizer-api/pkg/featureflags"
)

func TestHealthHandler(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.CacheEnabled: true,
	})

	_, api := humatest.New(t)
	NewHealthHandler(flags).RegisterRoutes(api)

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Status string          `json:"status"`
		Flags  map[string]bool `json:"flags"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Flags["cache_enabled"])
}

func TestHealthHandler_NilManagerReportsDefaults(t *testing.T) {
	_, api := humatest.New(t)
	NewHealthHandler(nil).RegisterRoutes(api)

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"feed_detection_enabled":true`)
}
