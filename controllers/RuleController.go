package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khankhulgun/prettymap/rules"
)

// GetRules exposes the raw ordered rule table for inspection.
func GetRules(c *fiber.Ctx) error {
	geometry := c.Params("geometry")
	palette := ActivePalette()

	switch geometry {
	case "polygon":
		table, err := rules.BuildPolygonRules(palette)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		return c.JSON(table)
	case "line":
		table, err := rules.BuildLineRules(palette)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		return c.JSON(table)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Geometry must be polygon or line",
		})
	}
}

type ResolveInput struct {
	Geometry  string            `json:"geometry" validate:"required"`
	Tags      map[string]string `json:"tags"`
	FeatureID int64             `json:"feature_id"`
}

// ResolveFeature resolves a single feature's tags against the active rule
// table, reporting which rule would style it.
func ResolveFeature(c *fiber.Ctx) error {
	var input ResolveInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid input",
			"error":   err.Error(),
		})
	}

	palette := ActivePalette()

	switch input.Geometry {
	case "polygon":
		table, err := rules.BuildPolygonRules(palette)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		rule, ok := rules.ResolvePolygon(table, input.Tags, input.FeatureID)
		return c.JSON(fiber.Map{"matched": ok, "rule": rule})
	case "line":
		table, err := rules.BuildLineRules(palette)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		rule, ok := rules.ResolveLine(table, input.Tags)
		if !ok {
			return c.JSON(fiber.Map{"matched": false})
		}
		return c.JSON(fiber.Map{"matched": true, "rule": rule})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Geometry must be polygon or line",
		})
	}
}
