package styler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khankhulgun/prettymap/models"
)

// WriteStyleFile serializes a style document under dir as <id>.json for
// reuse outside the immediate session and returns the written path.
func WriteStyleFile(style models.MapStyle, dir, id string) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	outputFile := filepath.Join(dir, fmt.Sprintf("%s.json", id))
	file, err := os.Create(outputFile)
	if err != nil {
		return "", fmt.Errorf("error creating style file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(style); err != nil {
		return "", fmt.Errorf("error writing style file: %w", err)
	}

	return outputFile, nil
}
