package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/khankhulgun/prettymap/models"
	"github.com/lambda-platform/lambda/DB"
	"gorm.io/gorm"
)

const activePaletteName = "prettymaps"

// ActivePalette returns the stored active palette, falling back to the
// built-in prettymaps defaults when none has been saved yet.
func ActivePalette() models.Palette {
	var row models.StylePalette
	err := DB.DB.Where("is_active = ?", true).First(&row).Error
	if err != nil {
		return models.DefaultPalette()
	}
	return row.Palette()
}

func GetPalette(c *fiber.Ctx) error {
	return c.JSON(ActivePalette())
}

func SavePalette(c *fiber.Ctx) error {
	var palette models.Palette
	if err := c.BodyParser(&palette); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid input",
			"error":   err.Error(),
		})
	}

	// Fail fast before anything is stored
	if err := palette.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	var row models.StylePalette
	err := DB.DB.Where("name = ?", activePaletteName).First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Error retrieving palette",
				"error":   err.Error(),
			})
		}
		row = models.StylePalette{Name: activePaletteName, IsActive: true}
	}

	row.ApplyPalette(palette)

	if err := DB.DB.Save(&row).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error saving palette",
			"error":   err.Error(),
		})
	}

	return c.JSON(row)
}
