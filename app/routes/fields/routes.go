package fields

import (
	"github.com/gofiber/fiber/v2"

	"projecttracker/app/routes/auth"
)

func SetupFieldsRoutes(app *fiber.App) {
	api := app.Group("/api/fields")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetFieldsAPI)
	api.Get("/:id", GetFieldAPI)
	api.Post("/", CreateFieldAPI)
	api.Put("/:id", UpdateFieldAPI)
	api.Patch("/:id", UpdateFieldAPI)
	api.Delete("/:id", DeleteFieldAPI)

	values := app.Group("/api/field-values")
	values.Use(auth.AuthMiddleware)
	values.Get("/:pageType/:recordId", GetValuesAPI)
	values.Put("/:pageType/:recordId", SetValuesAPI)
}
