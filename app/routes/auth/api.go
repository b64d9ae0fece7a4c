package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"projecttracker/app/config"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request"})
	}

	admin := config.AppConfig.Admin
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(admin.Username)) != 1 ||
		!checkPassword(req.Password, admin) {
		return c.Status(401).JSON(fiber.Map{"ok": false, "error": "Invalid credentials"})
	}

	token, err := GenerateToken(req.Username)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"token":   token,
		"message": "Login successful",
	})
}

func checkPassword(password string, admin config.AdminConfig) bool {
	if admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(admin.Password)) == 1
}

func VerifyAPI(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*TokenClaims)
	return c.JSON(fiber.Map{
		"ok":         true,
		"username":   claims.Username,
		"expires_at": claims.ExpiresAt.Time,
	})
}

// RefreshAPI issues a fresh 24-hour token. The presented token must
// still be valid; an expired token cannot be refreshed.
func RefreshAPI(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*TokenClaims)

	token, err := GenerateToken(claims.Username)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"token":   token,
		"message": "Token refreshed",
	})
}
