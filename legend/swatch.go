package legend

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const swatchSize = 32

// swatchSVG is the legend icon for one polygon rule: a filled square with
// the rule's outline.
func swatchSVG(fill, stroke string, strokeWidth float64) string {
	if stroke == "" {
		stroke = fill
	}
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect x="2" y="2" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="%.2f"/>`+
			`</svg>`,
		swatchSize, swatchSize, swatchSize, swatchSize,
		swatchSize-4, swatchSize-4, fill, stroke, strokeWidth,
	)
}

// lineSwatchSVG is the legend icon for one road tier: a horizontal stroke
// sample at the tier's width, scaled up to stay visible at icon size.
func lineSwatchSVG(stroke string, width float64) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<line x1="2" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>`+
			`</svg>`,
		swatchSize, swatchSize, swatchSize, swatchSize,
		swatchSize/2, swatchSize-2, swatchSize/2, stroke, width*4,
	)
}

// renderSwatch rasterizes a swatch SVG into an RGBA image at 2x the
// view box size.
func renderSwatch(svg string) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}

	w := int(icon.ViewBox.W) * 2
	h := int(icon.ViewBox.H) * 2
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetColor(nil)

	icon.Draw(dasher, 1)

	return img, nil
}
