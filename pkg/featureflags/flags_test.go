package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_DefaultsWhenUnset(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	for _, flag := range All {
		assert.True(t, manager.IsEnabled(ctx, flag), "flag %s should default to enabled", flag)
	}
}

func TestEnvManager_DisabledWhenFlagSetFalse(t *testing.T) {
	os.Setenv("TEST_FEATURE_READABILITY_ENABLED", "false")
	defer os.Unsetenv("TEST_FEATURE_READABILITY_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, ReadabilityEnabled))
	assert.True(t, manager.IsEnabled(ctx, OpenGraphEnabled))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"false", "false", false},
		{"0", "0", false},
		{"DISABLED", "DISABLED", false},
		{"empty falls back to unknown-flag default", "", false},
		{"unrecognised falls back to unknown-flag default", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")

			manager := NewEnvManager("TEST_")
			ctx := context.Background()

			assert.Equal(t, tt.expected, manager.IsEnabled(ctx, "FLAG"))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	os.Setenv("TEST_FEATURE_CACHE_ENABLED", "true")
	defer os.Unsetenv("TEST_FEATURE_CACHE_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))

	manager.SetEnabled(CacheEnabled, false)

	assert.False(t, manager.IsEnabled(ctx, CacheEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	manager := NewEnvManager("TEST_ALL_")
	manager.SetEnabled(OpenGraphEnabled, false)

	flags := manager.GetAllFlags()

	assert.Len(t, flags, len(All))
	assert.False(t, flags[OpenGraphEnabled])
	assert.True(t, flags[CacheEnabled])
}

func TestStaticManager(t *testing.T) {
	flags := map[FeatureFlag]bool{
		ReadabilityEnabled: true,
		OpenGraphEnabled:   false,
	}

	manager := NewStaticManager(flags)
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, ReadabilityEnabled))
	assert.False(t, manager.IsEnabled(ctx, OpenGraphEnabled))
	assert.False(t, manager.IsEnabled(ctx, CacheEnabled)) // Not in initial map

	manager.SetEnabled(CacheEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))
}

func TestEnabled_NilManagerUsesDefaults(t *testing.T) {
	ctx := context.Background()

	assert.True(t, Enabled(ctx, nil, ReadabilityEnabled))
	assert.False(t, Enabled(ctx, NewStaticManager(nil), ReadabilityEnabled))
}

func TestContextManager(t *testing.T) {
	ctx := context.Background()

	// No manager in context disables everything
	assert.False(t, IsEnabled(ctx, CacheEnabled))

	ctx = WithManager(ctx, NewStaticManager(map[FeatureFlag]bool{CacheEnabled: true}))
	assert.True(t, IsEnabled(ctx, CacheEnabled))
}
