package models

type MapStyle struct {
	Version int                     `json:"version"`
	Name    string                  `json:"name,omitempty"`
	Sources map[string]VectorSource `json:"sources"`
	Sprite  string                  `json:"sprite,omitempty"`
	Glyphs  string                  `json:"glyphs,omitempty"`
	Layers  []any                   `json:"layers"`
}

type VectorSource struct {
	Type  string   `json:"type"`
	Tiles []string `json:"tiles"`
}

// Background layer struct
type BackgroundLayer struct {
	ID    string               `json:"id"`
	Type  string               `json:"type"`
	Paint BackgroundLayerPaint `json:"paint"`
}

type BackgroundLayerPaint struct {
	BackgroundColor string `json:"background-color"`
}

// Fill layer struct
type FillLayer struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Source      string         `json:"source"`
	SourceLayer string         `json:"source-layer"`
	Filter      []interface{}  `json:"filter,omitempty"`
	Paint       FillLayerPaint `json:"paint"`
}

type FillLayerPaint struct {
	FillColor        string  `json:"fill-color"`
	FillOpacity      float64 `json:"fill-opacity,omitempty"`
	FillOutlineColor string  `json:"fill-outline-color,omitempty"`
}

// Line layer struct
type LineLayer struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Source      string          `json:"source"`
	SourceLayer string          `json:"source-layer"`
	Filter      []interface{}   `json:"filter,omitempty"`
	Layout      LineLayerLayout `json:"layout"`
	Paint       LineLayerPaint  `json:"paint"`
}

type LineLayerLayout struct {
	LineCap  string `json:"line-cap,omitempty"`
	LineJoin string `json:"line-join,omitempty"`
}

type LineLayerPaint struct {
	LineColor string  `json:"line-color"`
	LineWidth float64 `json:"line-width"`
}

// Sprite sheet entry metadata
type SpriteMeta struct {
	X          int `json:"x"`
	Y          int `json:"y"`
	Width      int `json:"width"`
	Height     int `json:"height"`
	PixelRatio int `json:"pixelRatio"`
}
