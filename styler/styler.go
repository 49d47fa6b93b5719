package styler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/khankhulgun/prettymap/models"
	"github.com/khankhulgun/prettymap/rules"
	"github.com/lambda-platform/lambda/config"
)

var ErrGeometryMismatch = errors.New("layer geometry does not match rule table")

// VectorLayer describes a host-supplied layer the rule tables are applied
// to. TileURL may be empty, in which case the configured domain's tile
// endpoint is used.
type VectorLayer struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	GeometryType string `json:"geometry_type"`
	SourceLayer  string `json:"source_layer"`
	TileURL      string `json:"tile_url"`
}

var polygonGeometries = map[string]bool{
	"Polygon":      true,
	"MultiPolygon": true,
}

var lineGeometries = map[string]bool{
	"LineString":      true,
	"MultiLineString": true,
}

// BuildStyle builds both rule tables for the palette and assembles them
// into a Mapbox GL style document. Geometry types are checked up front so
// polygon rules are never applied to a line layer or vice versa.
//
// The rule tables are first-match-wins lists, but a GL renderer paints
// every matching layer in document order. Appending each table in reverse
// keeps the contract: the catch-all paints first and every higher-priority
// rule paints over it, so the visible color of a feature is always the one
// its first matching rule assigns.
func BuildStyle(polygon, line VectorLayer, palette models.Palette) (models.MapStyle, error) {
	var style models.MapStyle

	if !polygonGeometries[polygon.GeometryType] {
		return style, fmt.Errorf("%w: polygon rules cannot style %q layer %s", ErrGeometryMismatch, polygon.GeometryType, polygon.ID)
	}
	if !lineGeometries[line.GeometryType] {
		return style, fmt.Errorf("%w: line rules cannot style %q layer %s", ErrGeometryMismatch, line.GeometryType, line.ID)
	}

	polygonRules, err := rules.BuildPolygonRules(palette)
	if err != nil {
		return style, err
	}
	lineRules, err := rules.BuildLineRules(palette)
	if err != nil {
		return style, err
	}

	style.Version = 8
	style.Sources = map[string]models.VectorSource{
		polygon.ID: {Type: "vector", Tiles: []string{tileURL(polygon)}},
		line.ID:    {Type: "vector", Tiles: []string{tileURL(line)}},
	}

	style.Layers = append(style.Layers, models.BackgroundLayer{
		ID:   "background",
		Type: "background",
		Paint: models.BackgroundLayerPaint{
			BackgroundColor: palette.Background,
		},
	})

	for i := len(polygonRules) - 1; i >= 0; i-- {
		rule := polygonRules[i]
		style.Layers = append(style.Layers, models.FillLayer{
			ID:          polygon.ID + "-" + rule.Label,
			Type:        "fill",
			Source:      polygon.ID,
			SourceLayer: polygon.SourceLayer,
			Filter:      rule.Predicate.Filter(),
			Paint: models.FillLayerPaint{
				FillColor:        rule.FillColor,
				FillOpacity:      1.0,
				FillOutlineColor: rule.OutlineColor,
			},
		})
	}

	for i := len(lineRules) - 1; i >= 0; i-- {
		rule := lineRules[i]
		style.Layers = append(style.Layers, models.LineLayer{
			ID:          line.ID + "-" + rule.Label,
			Type:        "line",
			Source:      line.ID,
			SourceLayer: line.SourceLayer,
			Filter:      rule.Predicate.Filter(),
			Layout: models.LineLayerLayout{
				LineCap:  "round",
				LineJoin: "round",
			},
			Paint: models.LineLayerPaint{
				LineColor: rule.StrokeColor,
				LineWidth: rule.StrokeWidth,
			},
		})
	}

	return style, nil
}

func tileURL(layer VectorLayer) string {
	if layer.TileURL != "" {
		return layer.TileURL
	}

	baseUrl := config.LambdaConfig.Domain
	hasProtocol := strings.HasPrefix(baseUrl, "http://") || strings.HasPrefix(baseUrl, "https://")

	if !hasProtocol {
		baseUrl = "https://" + baseUrl
	}

	return baseUrl + "/tiles/" + layer.ID + "/{z}/{x}/{y}.pbf"
}
