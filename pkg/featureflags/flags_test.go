package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_Defaults(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, WebVitalsEnabled))
	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))
	assert.False(t, manager.IsEnabled(ctx, FeatureFlag("unknown_flag")))
}

func TestEnvManager_DisabledByEnv(t *testing.T) {
	os.Setenv("TEST_FEATURE_WEB_VITALS_ENABLED", "false")
	defer os.Unsetenv("TEST_FEATURE_WEB_VITALS_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.False(t, manager.IsEnabled(context.Background(), WebVitalsEnabled))
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
		{"OFF", "OFF", false},
		{"empty uses default", "", true},
		{"garbage uses default", "maybe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FEATURE_METRICS_ENABLED", tt.value)
			defer os.Unsetenv("TEST_FEATURE_METRICS_ENABLED")

			manager := NewEnvManager("TEST_FEATURE_")
			assert.Equal(t, tt.expected, manager.IsEnabled(context.Background(), MetricsEnabled))
		})
	}
}

func TestEnvManager_OverrideWins(t *testing.T) {
	os.Setenv("TEST_FEATURE_CACHE_ENABLED", "true")
	defer os.Unsetenv("TEST_FEATURE_CACHE_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(CacheEnabled, false)

	assert.False(t, manager.IsEnabled(context.Background(), CacheEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(RevalidateEnabled, false)

	flags := manager.GetAllFlags()

	assert.Len(t, flags, 5)
	assert.False(t, flags[RevalidateEnabled])
	assert.True(t, flags[MetricsEnabled])
}

func TestStaticManager(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{MetricsEnabled: true})
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, MetricsEnabled))
	assert.False(t, manager.IsEnabled(ctx, WebVitalsEnabled))

	manager.SetEnabled(WebVitalsEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, WebVitalsEnabled))

	all := manager.GetAllFlags()
	all[MetricsEnabled] = false
	assert.True(t, manager.IsEnabled(ctx, MetricsEnabled), "GetAllFlags returns a copy")
}

func TestContextManager(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsEnabled(ctx, MetricsEnabled), "no manager disables everything")

	ctx = WithManager(ctx, NewStaticManager(map[FeatureFlag]bool{MetricsEnabled: true}))
	assert.True(t, IsEnabled(ctx, MetricsEnabled))
}
