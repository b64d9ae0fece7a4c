package projects

import (
	"github.com/gofiber/fiber/v2"

	"projecttracker/app/routes/auth"
)

func SetupProjectsRoutes(app *fiber.App) {
	api := app.Group("/api/projects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetProjectsAPI)
	api.Get("/:id", GetProjectAPI)
	api.Post("/", CreateProjectAPI)
	api.Put("/:id", UpdateProjectAPI)
	api.Patch("/:id", UpdateProjectAPI)
	api.Delete("/:id", DeleteProjectAPI)
}
