package lookups

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projecttracker/app/config"
	"projecttracker/app/database"
)

func GetUnitsAPI(c *fiber.Ctx) error          { return listLookups(c, tableUnits) }
func GetPaymentMethodsAPI(c *fiber.Ctx) error { return listLookups(c, tablePaymentMethods) }

func GetUnitAPI(c *fiber.Ctx) error          { return getLookup(c, tableUnits) }
func GetPaymentMethodAPI(c *fiber.Ctx) error { return getLookup(c, tablePaymentMethods) }

func CreateUnitAPI(c *fiber.Ctx) error          { return createLookupHandler(c, tableUnits) }
func CreatePaymentMethodAPI(c *fiber.Ctx) error { return createLookupHandler(c, tablePaymentMethods) }

func UpdateUnitAPI(c *fiber.Ctx) error          { return updateLookupHandler(c, tableUnits) }
func UpdatePaymentMethodAPI(c *fiber.Ctx) error { return updateLookupHandler(c, tablePaymentMethods) }

func DeleteUnitAPI(c *fiber.Ctx) error          { return deleteLookupHandler(c, tableUnits) }
func DeletePaymentMethodAPI(c *fiber.Ctx) error { return deleteLookupHandler(c, tablePaymentMethods) }

func listLookups(c *fiber.Ctx, table string) error {
	lookups, err := getAllLookups(config.GetDB(), table)
	if err != nil {
		return err
	}
	return c.JSON(lookups)
}

func getLookup(c *fiber.Ctx, table string) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	l, err := getLookupByID(config.GetDB(), table, id)
	if err != nil {
		return err
	}
	return c.JSON(l)
}

func createLookupHandler(c *fiber.Ctx, table string) error {
	l := Lookup{IsActive: true}
	if err := c.BodyParser(&l); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	if err := createLookup(config.GetDB(), table, &l); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}

func updateLookupHandler(c *fiber.Ctx, table string) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	patch, err := database.ParsePatch(c.Body())
	if err != nil {
		return err
	}

	l, err := updateLookup(config.GetDB(), table, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(l)
}

func deleteLookupHandler(c *fiber.Ctx, table string) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	if err := deleteLookup(config.GetDB(), table, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
