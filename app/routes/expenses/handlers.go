package expenses

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"projecttracker/app/config"
	"projecttracker/app/database"
	"projecttracker/app/models"
)

func handleList(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := ExpenseFilters{
			CategoryID: c.Query("category_id"),
			ProjectID:  c.Query("project_id"),
			Status:     c.Query("status"),
			DateFrom:   c.Query("date_from"),
			DateTo:     c.Query("date_to"),
		}

		expenses, err := GetAllExpenses(config.GetDB(), table, filters)
		if err != nil {
			return err
		}
		return c.JSON(expenses)
	}
}

func handleGet(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
		}

		expense, err := GetExpenseByID(config.GetDB(), table, id)
		if err != nil {
			return err
		}
		return c.JSON(expense)
	}
}

func handleCreate(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		expense := models.Expense{
			Quantity: decimal.NewFromInt(1),
			Status:   models.ExpensePending,
		}
		if err := c.BodyParser(&expense); err != nil {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
		}

		if err := CreateExpense(config.GetDB(), table, &expense); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(expense)
	}
}

func handleUpdate(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
		}

		patch, err := database.ParsePatch(c.Body())
		if err != nil {
			return err
		}

		expense, err := UpdateExpense(config.GetDB(), table, id, patch)
		if err != nil {
			return err
		}
		return c.JSON(expense)
	}
}

func handleDelete(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
		}

		if err := DeleteExpense(config.GetDB(), table, id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
