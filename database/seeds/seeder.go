package seeds

import (
	"log"

	"github.com/khankhulgun/prettymap/models"
	"github.com/lambda-platform/lambda/DB"
)

// Seed inserts the default prettymaps palette row. Idempotent: an existing
// row with the same name is left untouched.
func Seed() {
	palette := models.DefaultPalette()

	query := `
	INSERT INTO "pretty_style"."palettes"
		("name", "background", "green", "forest", "water", "parking", "streets", "edge", "building_1", "building_2", "building_3", "is_active")
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT ("name") DO NOTHING;
	`
	if err := DB.DB.Exec(query,
		"prettymaps",
		palette.Background,
		palette.Green,
		palette.Forest,
		palette.Water,
		palette.Parking,
		palette.Streets,
		palette.Edge,
		palette.BuildingPalette[0],
		palette.BuildingPalette[1],
		palette.BuildingPalette[2],
		true,
	).Error; err != nil {
		log.Printf("Failed to seed default palette: %v", err)
	}
}
