package lookups

import (
	"github.com/gofiber/fiber/v2"

	"projecttracker/app/routes/auth"
)

// SetupLookupsRoutes registers the two pure lookup entities. Both are
// soft-deleted only.
func SetupLookupsRoutes(app *fiber.App) {
	units := app.Group("/api/units")
	units.Use(auth.AuthMiddleware)
	units.Get("/", GetUnitsAPI)
	units.Get("/:id", GetUnitAPI)
	units.Post("/", CreateUnitAPI)
	units.Put("/:id", UpdateUnitAPI)
	units.Patch("/:id", UpdateUnitAPI)
	units.Delete("/:id", DeleteUnitAPI)

	methods := app.Group("/api/payment-methods")
	methods.Use(auth.AuthMiddleware)
	methods.Get("/", GetPaymentMethodsAPI)
	methods.Get("/:id", GetPaymentMethodAPI)
	methods.Post("/", CreatePaymentMethodAPI)
	methods.Put("/:id", UpdatePaymentMethodAPI)
	methods.Patch("/:id", UpdatePaymentMethodAPI)
	methods.Delete("/:id", DeletePaymentMethodAPI)
}
