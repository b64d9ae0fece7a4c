package categories

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projecttracker/app/config"
	"projecttracker/app/database"
	"projecttracker/app/models"
)

func GetCategoriesAPI(c *fiber.Ctx) error {
	categories, err := GetAllCategories(config.GetDB())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func GetCategoryAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	category, err := GetCategoryByID(config.GetDB(), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func CreateCategoryAPI(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	if err := CreateCategory(config.GetDB(), &cat); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func UpdateCategoryAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	patch, err := database.ParsePatch(c.Body())
	if err != nil {
		return err
	}

	category, err := UpdateCategory(config.GetDB(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func DeleteCategoryAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	if err := DeleteCategory(config.GetDB(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
