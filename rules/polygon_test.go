package rules

import (
	"encoding/json"
	"testing"

	"github.com/khankhulgun/prettymap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPolygonRulesOrder(t *testing.T) {
	table, err := BuildPolygonRules(models.DefaultPalette())
	require.NoError(t, err)

	var labels []string
	for _, rule := range table {
		labels = append(labels, rule.Label)
	}

	assert.Equal(t, []string{
		"buildings-1",
		"buildings-2",
		"buildings-3",
		"parking-pedestrian",
		"water",
		"forest",
		"green-spaces",
		"fallback",
	}, labels)

	for i, rule := range table {
		assert.Equal(t, i, rule.Priority, "priority must equal table position")
	}

	last := table[len(table)-1]
	assert.True(t, last.Predicate.MatchAll, "rule table must terminate in a catch-all")
}

func TestResolvePolygonColors(t *testing.T) {
	palette := models.DefaultPalette()
	table, err := BuildPolygonRules(palette)
	require.NoError(t, err)

	tests := []struct {
		name      string
		tags      map[string]string
		featureID int64
		wantLabel string
		wantColor string
	}{
		{"water", map[string]string{"natural": "water"}, 1, "water", "#a1e3ff"},
		{"river", map[string]string{"waterway": "river"}, 1, "water", palette.Water},
		{"park", map[string]string{"leisure": "park"}, 1, "green-spaces", palette.Green},
		{"meadow", map[string]string{"landuse": "meadow"}, 1, "green-spaces", palette.Green},
		{"forest", map[string]string{"landuse": "forest"}, 1, "forest", palette.Forest},
		{"scrub", map[string]string{"natural": "scrub"}, 1, "forest", palette.Forest},
		{"parking", map[string]string{"amenity": "parking"}, 1, "parking-pedestrian", palette.Parking},
		{"plaza", map[string]string{"leisure": "plaza"}, 1, "parking-pedestrian", palette.Parking},
		{"pier", map[string]string{"man_made": "pier"}, 1, "parking-pedestrian", palette.Parking},
		{"unmatched falls back", map[string]string{"landuse": "industrial"}, 1, "fallback", palette.Background},
		{"empty tags fall back", map[string]string{}, 1, "fallback", palette.Background},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := ResolvePolygon(table, tt.tags, tt.featureID)
			require.True(t, ok, "a well-formed tag set must always resolve")
			assert.Equal(t, tt.wantLabel, rule.Label)
			assert.Equal(t, tt.wantColor, rule.FillColor)
		})
	}
}

func TestResolvePolygonExactlyOneSpecificRule(t *testing.T) {
	table, err := BuildPolygonRules(models.DefaultPalette())
	require.NoError(t, err)

	tagSets := []map[string]string{
		{"building": "yes"},
		{"building": "apartments"},
		{"natural": "water"},
		{"landuse": "forest"},
		{"leisure": "garden"},
		{"highway": "pedestrian"},
		{"place": "square"},
	}

	for _, tags := range tagSets {
		matches := 0
		for _, rule := range table {
			if rule.Predicate.MatchAll {
				continue
			}
			if rule.Predicate.Matches(tags, 7) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "tags %v must match exactly one specific rule", tags)
	}
}

func TestResolvePolygonBuildingCycle(t *testing.T) {
	palette := models.DefaultPalette()
	table, err := BuildPolygonRules(palette)
	require.NoError(t, err)

	tags := map[string]string{"building": "yes"}

	for id := int64(0); id < 9; id++ {
		rule, ok := ResolvePolygon(table, tags, id)
		require.True(t, ok)
		want := palette.BuildingPalette[id%3]
		assert.Equal(t, want, rule.FillColor, "feature %d must take palette entry %d", id, id%3)
	}
}

func TestResolvePolygonBuildingNoIsNotABuilding(t *testing.T) {
	palette := models.DefaultPalette()
	table, err := BuildPolygonRules(palette)
	require.NoError(t, err)

	rule, ok := ResolvePolygon(table, map[string]string{"building": "no"}, 0)
	require.True(t, ok)
	assert.Equal(t, "fallback", rule.Label)
}

func TestBuildPolygonRulesMissingPaletteKey(t *testing.T) {
	palette := models.DefaultPalette()
	palette.Water = ""

	table, err := BuildPolygonRules(palette)
	assert.ErrorIs(t, err, models.ErrMissingPaletteKey)
	assert.Nil(t, table, "a broken palette must yield zero rules")
}

func TestBuildPolygonRulesInvalidColor(t *testing.T) {
	palette := models.DefaultPalette()
	palette.BuildingPalette[1] = "orange"

	table, err := BuildPolygonRules(palette)
	assert.ErrorIs(t, err, models.ErrInvalidColor)
	assert.Nil(t, table)
}

func TestBuildPolygonRulesDeterministic(t *testing.T) {
	palette := models.DefaultPalette()

	first, err := BuildPolygonRules(palette)
	require.NoError(t, err)
	second, err := BuildPolygonRules(palette)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON, "rule tables must be byte-identical across invocations")
}
