package models

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrMissingPaletteKey = errors.New("missing palette key")
	ErrInvalidColor      = errors.New("invalid color value")
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Palette holds the named colors every rule table is built from.
// All keys are required; BuildingPalette carries exactly three entries
// that building rules rotate through.
type Palette struct {
	Background      string    `json:"background"`
	Green           string    `json:"green"`
	Forest          string    `json:"forest"`
	Water           string    `json:"water"`
	Parking         string    `json:"parking"`
	Streets         string    `json:"streets"`
	Edge            string    `json:"edge"`
	BuildingPalette [3]string `json:"building_palette"`
}

// DefaultPalette returns the prettymaps color scheme.
func DefaultPalette() Palette {
	return Palette{
		Background:      "#F2F4CB",
		Green:           "#D0F1BF",
		Forest:          "#64B96A",
		Water:           "#a1e3ff",
		Parking:         "#F2F4CB",
		Streets:         "#2F3737",
		Edge:            "#2F3737",
		BuildingPalette: [3]string{"#FFC857", "#E9724C", "#C5283D"},
	}
}

// Validate fails fast on the first missing or malformed entry so no
// partial rule table is ever built from a broken palette.
func (p Palette) Validate() error {
	named := []struct {
		key   string
		value string
	}{
		{"background", p.Background},
		{"green", p.Green},
		{"forest", p.Forest},
		{"water", p.Water},
		{"parking", p.Parking},
		{"streets", p.Streets},
		{"edge", p.Edge},
	}

	for _, entry := range named {
		if err := validateColor(entry.key, entry.value); err != nil {
			return err
		}
	}

	for i, color := range p.BuildingPalette {
		if err := validateColor(fmt.Sprintf("building_palette[%d]", i), color); err != nil {
			return err
		}
	}

	return nil
}

func validateColor(key, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingPaletteKey, key)
	}
	if !hexColorPattern.MatchString(value) {
		return fmt.Errorf("%w: %s = %q", ErrInvalidColor, key, value)
	}
	return nil
}
