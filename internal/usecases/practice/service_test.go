package practice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsai/analytics-api/infrastructure/dataset"
	"github.com/mdsai/analytics-api/infrastructure/repository"
)

func newTestManager() Manager {
	return NewService(repository.NewMemoryLocationRepository(dataset.Locations()))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "MDS Family Medicine", cfg.PracticeName)
	assert.Equal(t, "#0F4C81", cfg.PrimaryColor)
	assert.Len(t, cfg.Providers, 4)
	assert.Len(t, cfg.MetricTargets, 4)
	assert.Len(t, cfg.LocationNames, 3)
	assert.True(t, cfg.UpdatedAt.IsZero())

	var shareSum float64
	for _, provider := range cfg.Providers {
		shareSum += provider.SharePercent
	}
	assert.InDelta(t, 100, shareSum, 1e-9)
}

func TestGetConfigReturnsACopy(t *testing.T) {
	manager := newTestManager()
	ctx := context.Background()

	first, err := manager.GetConfig(ctx)
	require.NoError(t, err)

	first.PracticeName = "Mutated"
	first.MetricTargets["collection_rate"] = 1
	first.Providers[0].Name = "Mutated"

	second, err := manager.GetConfig(ctx)
	require.NoError(t, err)

	assert.Equal(t, "MDS Family Medicine", second.PracticeName)
	assert.InDelta(t, 95, second.MetricTargets["collection_rate"], 1e-9)
	assert.Equal(t, "Dr. Alana Reyes", second.Providers[0].Name)
}

func TestUpdateConfigMergesScalars(t *testing.T) {
	manager := newTestManager()
	ctx := context.Background()

	updated, err := manager.UpdateConfig(ctx, map[string]interface{}{
		"practice_name": "Desert Family Health",
		"primary_color": "#123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "Desert Family Health", updated.PracticeName)
	assert.Equal(t, "#123456", updated.PrimaryColor)
	assert.Equal(t, "Care that counts, numbers that prove it", updated.Tagline)
	assert.Len(t, updated.Providers, 4)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestUpdateConfigReplacesCollectionsWholesale(t *testing.T) {
	manager := newTestManager()
	ctx := context.Background()

	updated, err := manager.UpdateConfig(ctx, map[string]interface{}{
		"providers": []interface{}{
			map[string]interface{}{
				"name":          "Dr. Sam Ortiz",
				"specialty":     "Family Medicine",
				"share_percent": 100,
			},
		},
		"metric_targets": map[string]interface{}{
			"denial_rate": 5,
		},
	})
	require.NoError(t, err)

	// Present fields replace the stored value entirely; the other targets
	// are gone, not merged.
	require.Len(t, updated.Providers, 1)
	assert.Equal(t, "Dr. Sam Ortiz", updated.Providers[0].Name)
	require.Len(t, updated.MetricTargets, 1)
	assert.InDelta(t, 5, updated.MetricTargets["denial_rate"], 1e-9)

	// Absent fields keep their current value.
	assert.Len(t, updated.LocationNames, 3)
	assert.Equal(t, "MDS Family Medicine", updated.PracticeName)
}

func TestUpdateConfigPersistsAcrossReads(t *testing.T) {
	manager := newTestManager()
	ctx := context.Background()

	_, err := manager.UpdateConfig(ctx, map[string]interface{}{"tagline": "New tagline"})
	require.NoError(t, err)

	cfg, err := manager.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New tagline", cfg.Tagline)
}

func TestUpdateConfigIgnoresUnknownKeys(t *testing.T) {
	manager := newTestManager()
	ctx := context.Background()

	updated, err := manager.UpdateConfig(ctx, map[string]interface{}{
		"practice_name": "Desert Family Health",
		"favicon":       "/assets/favicon.ico",
	})
	require.NoError(t, err)
	assert.Equal(t, "Desert Family Health", updated.PracticeName)
}

func TestUpdateConfigRejectsWrongShapes(t *testing.T) {
	manager := newTestManager()
	ctx := context.Background()

	_, err := manager.UpdateConfig(ctx, map[string]interface{}{
		"metric_targets": map[string]interface{}{
			"denial_rate": "not-a-number",
		},
	})
	require.Error(t, err)

	// A failed merge must not leave partial state behind.
	cfg, err := manager.GetConfig(ctx)
	require.NoError(t, err)
	assert.Len(t, cfg.MetricTargets, 4)
	assert.InDelta(t, 6, cfg.MetricTargets["denial_rate"], 1e-9)
	assert.True(t, cfg.UpdatedAt.IsZero())
}

func TestUpdateConfigCoercesCompatibleTypes(t *testing.T) {
	manager := newTestManager()
	ctx := context.Background()

	// JSON numbers arrive as float64; string digits are accepted too since
	// the decoder is weakly typed.
	updated, err := manager.UpdateConfig(ctx, map[string]interface{}{
		"metric_targets": map[string]interface{}{
			"days_in_ar": "30",
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 30, updated.MetricTargets["days_in_ar"], 1e-9)
}

func TestListLocations(t *testing.T) {
	manager := newTestManager()

	locations, err := manager.ListLocations(context.Background())
	require.NoError(t, err)

	require.Len(t, locations, 3)
	assert.Equal(t, "north", locations[0].ID)
	assert.Equal(t, "central", locations[1].ID)
	assert.Equal(t, "mesa", locations[2].ID)
}
