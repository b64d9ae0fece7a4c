package backup

import (
	"github.com/gofiber/fiber/v2"

	"projecttracker/app/config"
)

func CreateBackupAPI(c *fiber.Ctx) error {
	doc, err := CreateBackup(config.GetDB())
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

func RestoreBackupAPI(c *fiber.Ctx) error {
	var doc Document
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid backup document"})
	}

	restored, err := Restore(config.GetDB(), &doc)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"ok":       true,
		"restored": restored,
		"message":  "Restore completed",
	})
}
