package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/khankhulgun/prettymap/legend"
	"github.com/khankhulgun/prettymap/models"
	"github.com/khankhulgun/prettymap/rules"
	"github.com/khankhulgun/prettymap/styler"
	"github.com/lambda-platform/lambda/DB"
	"github.com/lambda-platform/lambda/config"
	"gorm.io/gorm"
)

type StyleInput struct {
	Name         string             `json:"name"`
	PolygonLayer styler.VectorLayer `json:"polygon_layer"`
	LineLayer    styler.VectorLayer `json:"line_layer"`
	Palette      *models.Palette    `json:"palette"`
}

func BuildStyle(c *fiber.Ctx) error {
	generate := c.Query("generate")

	var input StyleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid input",
			"error":   err.Error(),
		})
	}

	palette := ActivePalette()
	if input.Palette != nil {
		palette = *input.Palette
	}

	style, err := styler.CachedStyle(input.PolygonLayer, input.LineLayer, palette)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, styler.ErrGeometryMismatch) ||
			errors.Is(err, models.ErrMissingPaletteKey) ||
			errors.Is(err, models.ErrInvalidColor) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	id := uuid.New().String()
	style.Name = input.Name

	spriteURL := config.LambdaConfig.Domain + "/styles/" + id + "/sprite/legend"
	hasProtocol := strings.HasPrefix(spriteURL, "http://") || strings.HasPrefix(spriteURL, "https://")

	if !hasProtocol {
		style.Sprite = "https://" + spriteURL
	} else {
		style.Sprite = spriteURL
	}

	if generate == "true" {
		if _, err := styler.WriteStyleFile(style, "./public/styles", id); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Error writing style file",
				"error":   err.Error(),
			})
		}

		// Rule tables built once more for the legend; the palette already
		// validated during style assembly.
		polygonRules, _ := rules.BuildPolygonRules(palette)
		lineRules, _ := rules.BuildLineRules(palette)
		spritePath := fmt.Sprintf("./public/styles/%s/sprite/legend", id)
		if err := legend.MakeSprite(polygonRules, lineRules, spritePath); err != nil {
			log.Printf("Legend sprite generation failed: %v", err)
		}

		document, err := json.Marshal(style)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Error serializing style document",
				"error":   err.Error(),
			})
		}

		record := models.StyleDocument{
			ID:             id,
			Name:           input.Name,
			PolygonLayerID: input.PolygonLayer.ID,
			LineLayerID:    input.LineLayer.ID,
			Document:       string(document),
		}
		if err := DB.DB.Create(&record).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Error saving style document",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(style)
}

func GetStyleDocument(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "ID parameter is required",
		})
	}

	var record models.StyleDocument
	result := DB.DB.Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "error",
				"message": "Style document not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error retrieving style document",
			"error":   result.Error,
		})
	}

	c.Set("Content-Type", "application/json")
	return c.SendString(record.Document)
}
