package rules

import (
	"testing"

	"github.com/khankhulgun/prettymap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineRulesWidthsDecrease(t *testing.T) {
	table, err := BuildLineRules(models.DefaultPalette())
	require.NoError(t, err)
	require.NotEmpty(t, table)

	for i := 1; i < len(table); i++ {
		assert.LessOrEqual(t, table[i].StrokeWidth, table[i-1].StrokeWidth,
			"%s must not be wider than %s", table[i].Label, table[i-1].Label)
	}
}

func TestResolveLineWidths(t *testing.T) {
	palette := models.DefaultPalette()
	table, err := BuildLineRules(palette)
	require.NoError(t, err)

	tests := []struct {
		highway   string
		wantLabel string
		wantWidth float64
	}{
		{"motorway", "street-motorway", 1.2},
		{"motorway_link", "street-motorway", 1.2},
		{"trunk", "street-trunk", 1.1},
		{"primary", "street-primary", 1.0},
		{"secondary", "street-secondary", 0.9},
		{"tertiary_link", "street-tertiary", 0.8},
		{"residential", "street-residential", 0.6},
		{"unclassified", "street-unclassified", 0.5},
		{"living_street", "street-living_street", 0.5},
		{"pedestrian", "street-pedestrian", 0.4},
		{"service", "street-service", 0.4},
		{"footway", "street-footway", 0.3},
		{"path", "street-footway", 0.3},
		{"cycleway", "street-cycleway", 0.3},
		{"track", "street-track", 0.3},
		{"bridleway", "street-other", 0.3},
		{"raceway", "street-other", 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.highway, func(t *testing.T) {
			rule, ok := ResolveLine(table, map[string]string{"highway": tt.highway})
			require.True(t, ok, "every highway value must resolve to a tier")
			assert.Equal(t, tt.wantLabel, rule.Label)
			assert.Equal(t, tt.wantWidth, rule.StrokeWidth)
			assert.Equal(t, palette.Streets, rule.StrokeColor, "all tiers share one stroke color")
		})
	}
}

func TestResolveLineMotorwayWiderThanResidential(t *testing.T) {
	table, err := BuildLineRules(models.DefaultPalette())
	require.NoError(t, err)

	motorway, ok := ResolveLine(table, map[string]string{"highway": "motorway"})
	require.True(t, ok)
	residential, ok := ResolveLine(table, map[string]string{"highway": "residential"})
	require.True(t, ok)

	assert.Greater(t, motorway.StrokeWidth, residential.StrokeWidth)
}

func TestResolveLineKnownClassificationsAreUnique(t *testing.T) {
	table, err := BuildLineRules(models.DefaultPalette())
	require.NoError(t, err)

	for _, tier := range roadTiers {
		for _, value := range tier.values {
			matches := 0
			for _, rule := range table {
				if rule.Predicate.RequireKey != "" {
					continue
				}
				if rule.Predicate.Matches(map[string]string{"highway": value}, 0) {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "highway=%s must map to exactly one width tier", value)
		}
	}
}

func TestResolveLineWithoutHighwayTag(t *testing.T) {
	table, err := BuildLineRules(models.DefaultPalette())
	require.NoError(t, err)

	_, ok := ResolveLine(table, map[string]string{"waterway": "river"})
	assert.False(t, ok, "features without a highway tag are not streets")
}

func TestBuildLineRulesMissingPaletteKey(t *testing.T) {
	palette := models.DefaultPalette()
	palette.Streets = ""

	table, err := BuildLineRules(palette)
	assert.ErrorIs(t, err, models.ErrMissingPaletteKey)
	assert.Nil(t, table)
}
