package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaletteIsValid(t *testing.T) {
	require.NoError(t, DefaultPalette().Validate())
}

func TestPaletteValidateMissingKeys(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Palette)
	}{
		{"background", func(p *Palette) { p.Background = "" }},
		{"green", func(p *Palette) { p.Green = "" }},
		{"forest", func(p *Palette) { p.Forest = "" }},
		{"water", func(p *Palette) { p.Water = "" }},
		{"parking", func(p *Palette) { p.Parking = "" }},
		{"streets", func(p *Palette) { p.Streets = "" }},
		{"edge", func(p *Palette) { p.Edge = "" }},
		{"building_palette[0]", func(p *Palette) { p.BuildingPalette[0] = "" }},
		{"building_palette[2]", func(p *Palette) { p.BuildingPalette[2] = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette := DefaultPalette()
			tt.mutate(&palette)

			err := palette.Validate()
			require.ErrorIs(t, err, ErrMissingPaletteKey)
			assert.Contains(t, err.Error(), tt.name, "error must name the missing key")
		})
	}
}

func TestPaletteValidateMalformedColors(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"named color", "orange"},
		{"missing hash", "a1e3ff"},
		{"wrong length", "#a1e3f"},
		{"bad digits", "#zzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette := DefaultPalette()
			palette.Water = tt.value
			assert.ErrorIs(t, palette.Validate(), ErrInvalidColor)
		})
	}
}

func TestPaletteValidateShortHex(t *testing.T) {
	palette := DefaultPalette()
	palette.Water = "#abc"
	assert.NoError(t, palette.Validate(), "3-digit hex colors are allowed")
}

func TestStylePaletteRoundTrip(t *testing.T) {
	palette := DefaultPalette()

	var row StylePalette
	row.ApplyPalette(palette)

	assert.Equal(t, palette, row.Palette())
}
