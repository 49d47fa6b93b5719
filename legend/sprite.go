package legend

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/khankhulgun/prettymap/models"
	"github.com/khankhulgun/prettymap/rules"
)

// MakeSprite renders one swatch per rule and assembles them into a Mapbox
// sprite sheet (PNG plus JSON metadata, written under the @1x and @2x
// names) so a GL client can present the rule table as a legend. Errors
// are returned rather than fatal: a failed legend must never take down
// the host styling operation.
func MakeSprite(polygonRules []rules.StyleRule, lineRules []rules.LineRule, destFile string) error {
	var names []string
	var svgs []string

	for _, rule := range polygonRules {
		names = append(names, rule.Label)
		svgs = append(svgs, swatchSVG(rule.FillColor, rule.OutlineColor, rule.OutlineWidth))
	}
	for _, rule := range lineRules {
		names = append(names, rule.Label)
		svgs = append(svgs, lineSwatchSVG(rule.StrokeColor, rule.StrokeWidth))
	}

	if len(svgs) == 0 {
		return fmt.Errorf("no rules to render")
	}

	// Render swatches and calculate sprite dimensions
	var images []image.Image
	var spriteWidth, maxHeight int
	spriteMeta := make(map[string]models.SpriteMeta)

	for i, svg := range svgs {
		img, err := renderSwatch(svg)
		if err != nil {
			return fmt.Errorf("error rendering swatch %s: %w", names[i], err)
		}

		images = append(images, img)
		bounds := img.Bounds()
		width, height := bounds.Dx(), bounds.Dy()
		spriteMeta[names[i]] = models.SpriteMeta{
			X:          spriteWidth,
			Y:          0,
			Width:      width,
			Height:     height,
			PixelRatio: 1,
		}
		spriteWidth += width
		if height > maxHeight {
			maxHeight = height
		}
	}

	// Create the sprite sheet image
	spriteImg := image.NewRGBA(image.Rect(0, 0, spriteWidth, maxHeight))
	currentX := 0
	for _, img := range images {
		bounds := img.Bounds()
		width, height := bounds.Dx(), bounds.Dy()
		draw.Draw(spriteImg, image.Rect(currentX, 0, currentX+width, height), img, image.Point{}, draw.Over)
		currentX += width
	}

	if err := os.MkdirAll(filepath.Dir(destFile), os.ModePerm); err != nil {
		return fmt.Errorf("error creating sprite directory: %w", err)
	}

	if err := saveImage(spriteImg, destFile+".png"); err != nil {
		return err
	}
	if err := saveImage(spriteImg, destFile+"@2x.png"); err != nil {
		return err
	}

	if err := saveJSON(spriteMeta, destFile+".json"); err != nil {
		return err
	}
	return saveJSON(spriteMeta, destFile+"@2x.json")
}

func saveImage(img image.Image, filename string) error {
	outFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating sprite image: %w", err)
	}
	defer outFile.Close()

	if err := png.Encode(outFile, img); err != nil {
		return fmt.Errorf("error encoding PNG: %w", err)
	}
	return nil
}

func saveJSON(meta map[string]models.SpriteMeta, filename string) error {
	jsonFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating sprite metadata: %w", err)
	}
	defer jsonFile.Close()

	encoder := json.NewEncoder(jsonFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(meta); err != nil {
		return fmt.Errorf("error encoding sprite metadata: %w", err)
	}
	return nil
}
