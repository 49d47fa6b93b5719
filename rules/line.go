package rules

import (
	"github.com/khankhulgun/prettymap/models"
)

// LineRule pairs a highway-classification predicate with its stroke
// treatment. Widths are in millimetres at render scale.
type LineRule struct {
	Label       string    `json:"label"`
	Predicate   Predicate `json:"predicate"`
	StrokeColor string    `json:"stroke_color"`
	StrokeWidth float64   `json:"stroke_width"`
	Priority    int       `json:"priority"`
}

const fallbackStrokeWidth = 0.3

// Highway classification tiers, widest first. Every known classification
// maps to exactly one tier; anything else with a highway tag falls back
// to the thinnest width.
var roadTiers = []struct {
	name   string
	width  float64
	values []string
}{
	{"motorway", 1.2, []string{"motorway", "motorway_link"}},
	{"trunk", 1.1, []string{"trunk", "trunk_link"}},
	{"primary", 1.0, []string{"primary", "primary_link"}},
	{"secondary", 0.9, []string{"secondary", "secondary_link"}},
	{"tertiary", 0.8, []string{"tertiary", "tertiary_link"}},
	{"residential", 0.6, []string{"residential"}},
	{"unclassified", 0.5, []string{"unclassified"}},
	{"living_street", 0.5, []string{"living_street"}},
	{"pedestrian", 0.4, []string{"pedestrian"}},
	{"service", 0.4, []string{"service"}},
	{"footway", 0.3, []string{"footway", "path"}},
	{"cycleway", 0.3, []string{"cycleway"}},
	{"track", 0.3, []string{"track"}},
}

// BuildLineRules builds the ordered road rule table for a palette. Tiers
// are ordered widest to thinnest and all share the streets stroke color;
// the trailing rule catches any feature carrying a highway tag that no
// tier names. A broken palette yields zero rules.
func BuildLineRules(palette models.Palette) ([]LineRule, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	var table []LineRule

	for _, tier := range roadTiers {
		matches := make([]TagMatch, 0, len(tier.values))
		for _, value := range tier.values {
			matches = append(matches, TagMatch{Key: "highway", Value: value})
		}
		table = append(table, LineRule{
			Label:       "street-" + tier.name,
			Predicate:   Predicate{AnyOf: matches},
			StrokeColor: palette.Streets,
			StrokeWidth: tier.width,
		})
	}

	table = append(table, LineRule{
		Label:       "street-other",
		Predicate:   Predicate{RequireKey: "highway"},
		StrokeColor: palette.Streets,
		StrokeWidth: fallbackStrokeWidth,
	})

	for i := range table {
		table[i].Priority = i
	}

	return table, nil
}
