package migrations

import (
	"github.com/khankhulgun/prettymap/models"
	"github.com/lambda-platform/lambda/DB"
	"log"
)

func Migrate() {
	// Create the schema if it doesn't exist
	createSchema := `
	CREATE SCHEMA IF NOT EXISTS pretty_style;
	`

	err := DB.DB.Exec(createSchema).Error
	if err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	DB.DB.AutoMigrate(
		&models.StylePalette{},
		&models.StyleDocument{},
	)
}
