package categories

import (
	"github.com/gofiber/fiber/v2"

	"projecttracker/app/routes/auth"
)

func SetupCategoriesRoutes(app *fiber.App) {
	api := app.Group("/api/categories")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetCategoriesAPI)
	api.Get("/:id", GetCategoryAPI)
	api.Post("/", CreateCategoryAPI)
	api.Put("/:id", UpdateCategoryAPI)
	api.Patch("/:id", UpdateCategoryAPI)
	api.Delete("/:id", DeleteCategoryAPI)
}
