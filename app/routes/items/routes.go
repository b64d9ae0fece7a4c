package items

import (
	"github.com/gofiber/fiber/v2"

	"projecttracker/app/routes/auth"
)

func SetupItemsRoutes(app *fiber.App) {
	api := app.Group("/api/project-items")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetItemsAPI)
	api.Get("/:id", GetItemAPI)
	api.Post("/", CreateItemAPI)
	api.Put("/:id", UpdateItemAPI)
	api.Patch("/:id", UpdateItemAPI)
	api.Delete("/:id", DeleteItemAPI)
}
