package backup

import (
	"github.com/gofiber/fiber/v2"

	"projecttracker/app/routes/auth"
)

func SetupBackupRoutes(app *fiber.App) {
	api := app.Group("/api/backup")
	api.Use(auth.AuthMiddleware)
	api.Get("/", CreateBackupAPI)
	api.Post("/restore", RestoreBackupAPI)
}
