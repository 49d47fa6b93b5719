package rules

import (
	"fmt"

	"github.com/khankhulgun/prettymap/models"
)

// StyleRule pairs a polygon predicate with its fill treatment. Priority is
// the rule's position in the table: 0 is evaluated first.
type StyleRule struct {
	Label        string    `json:"label"`
	Predicate    Predicate `json:"predicate"`
	FillColor    string    `json:"fill_color"`
	OutlineColor string    `json:"outline_color"`
	OutlineWidth float64   `json:"outline_width"`
	Priority     int       `json:"priority"`
}

const (
	buildingOutlineWidth = 0.15
	polygonOutlineWidth  = 0.3
)

var greenTags = []TagMatch{
	{Key: "landuse", Value: "grass"},
	{Key: "leisure", Value: "park"},
	{Key: "leisure", Value: "garden"},
	{Key: "natural", Value: "island"},
	{Key: "natural", Value: "wood"},
	{Key: "natural", Value: "grassland"},
	{Key: "landuse", Value: "meadow"},
	{Key: "landuse", Value: "recreation_ground"},
}

var forestTags = []TagMatch{
	{Key: "landuse", Value: "forest"},
	{Key: "natural", Value: "tree_row"},
	{Key: "natural", Value: "scrub"},
}

var waterTags = []TagMatch{
	{Key: "natural", Value: "water"},
	{Key: "natural", Value: "bay"},
	{Key: "waterway", Value: "river"},
	{Key: "waterway", Value: "stream"},
	{Key: "waterway", Value: "canal"},
	{Key: "waterway", Value: "drain"},
	{Key: "landuse", Value: "reservoir"},
	{Key: "landuse", Value: "basin"},
}

var parkingTags = []TagMatch{
	{Key: "amenity", Value: "parking"},
	{Key: "highway", Value: "pedestrian"},
	{Key: "highway", Value: "footway"},
	{Key: "man_made", Value: "pier"},
	{Key: "leisure", Value: "plaza"},
	{Key: "place", Value: "square"},
}

// BuildPolygonRules builds the ordered polygon rule table for a palette.
// Rule order is authoritative: buildings first (one rule per rotating
// palette entry, keyed on feature ID mod 3), then parking/pedestrian,
// water, forest, generic green space, and a catch-all fallback so no
// polygon is ever left unstyled. A broken palette yields zero rules.
func BuildPolygonRules(palette models.Palette) ([]StyleRule, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	var table []StyleRule

	for i, color := range palette.BuildingPalette {
		table = append(table, StyleRule{
			Label: fmt.Sprintf("buildings-%d", i+1),
			Predicate: Predicate{
				RequireKey:      "building",
				ModuloBase:      len(palette.BuildingPalette),
				ModuloRemainder: i,
			},
			FillColor:    color,
			OutlineColor: palette.Edge,
			OutlineWidth: buildingOutlineWidth,
		})
	}

	table = append(table,
		StyleRule{
			Label:        "parking-pedestrian",
			Predicate:    Predicate{AnyOf: parkingTags},
			FillColor:    palette.Parking,
			OutlineColor: palette.Edge,
			OutlineWidth: polygonOutlineWidth,
		},
		StyleRule{
			Label:        "water",
			Predicate:    Predicate{AnyOf: waterTags},
			FillColor:    palette.Water,
			OutlineColor: palette.Edge,
			OutlineWidth: polygonOutlineWidth,
		},
		StyleRule{
			Label:        "forest",
			Predicate:    Predicate{AnyOf: forestTags},
			FillColor:    palette.Forest,
			OutlineColor: palette.Edge,
			OutlineWidth: polygonOutlineWidth,
		},
		StyleRule{
			Label:        "green-spaces",
			Predicate:    Predicate{AnyOf: greenTags},
			FillColor:    palette.Green,
			OutlineColor: palette.Edge,
			OutlineWidth: polygonOutlineWidth,
		},
		StyleRule{
			Label:     "fallback",
			Predicate: Predicate{MatchAll: true},
			FillColor: palette.Background,
		},
	)

	for i := range table {
		table[i].Priority = i
	}

	return table, nil
}
