package clients

import (
	"github.com/gofiber/fiber/v2"

	"projecttracker/app/routes/auth"
)

func SetupClientsRoutes(app *fiber.App) {
	api := app.Group("/api/clients")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClientsAPI)
	api.Get("/:id", GetClientAPI)
	api.Post("/", CreateClientAPI)
	api.Put("/:id", UpdateClientAPI)
	api.Patch("/:id", UpdateClientAPI)
	api.Delete("/:id", DeleteClientAPI)
}
