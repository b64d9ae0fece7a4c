package fields

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projecttracker/app/config"
	"projecttracker/app/database"
	"projecttracker/app/models"
)

func GetFieldsAPI(c *fiber.Ctx) error {
	fields, err := ListFields(config.GetDB(), c.Query("page_type"))
	if err != nil {
		return err
	}
	return c.JSON(fields)
}

func GetFieldAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	field, err := GetFieldByID(config.GetDB(), id)
	if err != nil {
		return err
	}
	return c.JSON(field)
}

func CreateFieldAPI(c *fiber.Ctx) error {
	var field models.DynamicField
	if err := c.BodyParser(&field); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	if err := CreateField(config.GetDB(), &field); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(field)
}

func UpdateFieldAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	patch, err := database.ParsePatch(c.Body())
	if err != nil {
		return err
	}

	field, err := UpdateField(config.GetDB(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(field)
}

func DeleteFieldAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	if err := DeleteField(config.GetDB(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetValuesAPI returns the stored values for a record along with their
// rendered interpretation under the page's field definitions.
func GetValuesAPI(c *fiber.Ctx) error {
	pageType := c.Params("pageType")
	recordID := c.Params("recordId")
	if _, err := uuid.Parse(recordID); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid record id"})
	}

	db := config.GetDB()
	values, err := GetValues(db, pageType, recordID)
	if err != nil {
		return err
	}

	fieldDefs, err := ListFields(db, pageType)
	if err != nil {
		return err
	}

	rendered := []RenderedValue{}
	for _, f := range fieldDefs {
		raw, ok := values[f.Name]
		if !ok && f.DefaultValue != nil {
			raw = *f.DefaultValue
		}
		rendered = append(rendered, RenderValue(f, raw, values))
	}

	return c.JSON(fiber.Map{
		"values":   values,
		"rendered": rendered,
	})
}

// SetValuesAPI bulk-upserts raw values for one record.
func SetValuesAPI(c *fiber.Ctx) error {
	pageType := c.Params("pageType")
	recordID := c.Params("recordId")
	if _, err := uuid.Parse(recordID); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid record id"})
	}

	var values map[string]string
	if err := c.BodyParser(&values); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	if err := SetValues(config.GetDB(), pageType, recordID, values); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}
