package clients

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projecttracker/app/config"
	"projecttracker/app/database"
	"projecttracker/app/models"
)

func GetClientsAPI(c *fiber.Ctx) error {
	clients, err := GetAllClients(config.GetDB())
	if err != nil {
		return err
	}
	return c.JSON(clients)
}

func GetClientAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	client, err := GetClientByID(config.GetDB(), id)
	if err != nil {
		return err
	}
	return c.JSON(client)
}

func CreateClientAPI(c *fiber.Ctx) error {
	client := models.Client{IsActive: true}
	if err := c.BodyParser(&client); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	if err := CreateClient(config.GetDB(), &client); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func UpdateClientAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	patch, err := database.ParsePatch(c.Body())
	if err != nil {
		return err
	}

	client, err := UpdateClient(config.GetDB(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(client)
}

func DeleteClientAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	if err := DeleteClient(config.GetDB(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
