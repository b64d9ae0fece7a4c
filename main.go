package main

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"projecttracker/app/config"
	"projecttracker/app/database"
	"projecttracker/app/routes/auth"
	"projecttracker/app/routes/backup"
	"projecttracker/app/routes/categories"
	"projecttracker/app/routes/clients"
	"projecttracker/app/routes/expenses"
	"projecttracker/app/routes/fields"
	"projecttracker/app/routes/items"
	"projecttracker/app/routes/lookups"
	"projecttracker/app/routes/projects"
)

// customErrorHandler maps repository errors onto HTTP statuses:
// ValidationError 400, NotFound 404, ConstraintError 409,
// StorageUnavailable 503, everything else 500.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	var validationErr *database.ValidationError
	var constraintErr *database.ConstraintError

	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.As(err, &constraintErr):
		code = fiber.StatusConflict
	case errors.Is(err, database.ErrStorageUnavailable):
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"ok":    false,
		"error": err.Error(),
	})
}

func main() {
	config.Load()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "connected"
		ok := true
		if err := config.GetDB().Ping(); err != nil {
			dbStatus = "error: " + err.Error()
			ok = false
		}
		return c.JSON(fiber.Map{
			"ok":        ok,
			"timestamp": time.Now().UTC(),
			"database":  dbStatus,
		})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	categories.SetupCategoriesRoutes(app)
	clients.SetupClientsRoutes(app)
	projects.SetupProjectsRoutes(app)
	items.SetupItemsRoutes(app)
	lookups.SetupLookupsRoutes(app)
	expenses.SetupExpensesRoutes(app)
	fields.SetupFieldsRoutes(app)
	backup.SetupBackupRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on " + addr)
	log.Fatal(app.Listen(addr))
}
