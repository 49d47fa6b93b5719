package prettymap

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khankhulgun/prettymap/controllers"
	"github.com/khankhulgun/prettymap/database/migrations"
	"github.com/khankhulgun/prettymap/database/seeds"
	"github.com/lambda-platform/lambda/config"
)

func Set(app *fiber.App) {
	a := app.Group("/styler/api")
	a.Get("/palette", controllers.GetPalette)
	a.Put("/palette", controllers.SavePalette)
	a.Post("/style", controllers.BuildStyle)
	a.Get("/style/:id", controllers.GetStyleDocument)
	a.Get("/rules/:geometry", controllers.GetRules)
	a.Post("/resolve", controllers.ResolveFeature)

	if config.Config.App.Migrate == "true" {
		migrations.Migrate()
	}
	if config.Config.App.Seed == "true" {
		seeds.Seed()
	}
}
