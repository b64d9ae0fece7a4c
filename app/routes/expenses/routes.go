package expenses

import (
	"github.com/gofiber/fiber/v2"

	"projecttracker/app/routes/auth"
)

// SetupExpensesRoutes registers both expense surfaces. Actual and
// expected expenses share one table shape and one set of queries; only
// the backing table differs.
func SetupExpensesRoutes(app *fiber.App) {
	registerExpenseRoutes(app.Group("/api/expenses"), tableExpenses)
	registerExpenseRoutes(app.Group("/api/expected-expenses"), tableExpectedExpenses)
}

func registerExpenseRoutes(api fiber.Router, table string) {
	api.Use(auth.AuthMiddleware)
	api.Get("/", handleList(table))
	api.Get("/:id", handleGet(table))
	api.Post("/", handleCreate(table))
	api.Put("/:id", handleUpdate(table))
	api.Patch("/:id", handleUpdate(table))
	api.Delete("/:id", handleDelete(table))
}
