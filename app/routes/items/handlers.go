package items

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projecttracker/app/config"
	"projecttracker/app/database"
	"projecttracker/app/models"
)

func GetItemsAPI(c *fiber.Ctx) error {
	items, err := GetAllItems(config.GetDB(), c.Query("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func GetItemAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	item, err := GetItemByID(config.GetDB(), id)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

func CreateItemAPI(c *fiber.Ctx) error {
	item := models.ProjectItem{IsActive: true}
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	if err := CreateItem(config.GetDB(), &item); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateItemAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	patch, err := database.ParsePatch(c.Body())
	if err != nil {
		return err
	}

	item, err := UpdateItem(config.GetDB(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

func DeleteItemAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	if err := DeleteItem(config.GetDB(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
