package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	// Public route
	api.Post("/login", LoginAPI)

	// Protected routes
	api.Get("/verify", AuthMiddleware, VerifyAPI)
	api.Post("/refresh", AuthMiddleware, RefreshAPI)
}

// AuthMiddleware validates the bearer token and stores the claims in the
// request context.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(401).JSON(fiber.Map{"ok": false, "error": "No token found"})
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims, err := ValidateToken(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"ok": false, "error": "Invalid or expired token"})
	}

	c.Locals("username", claims.Username)
	c.Locals("claims", claims)
	return c.Next()
}
