package projects

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projecttracker/app/config"
	"projecttracker/app/database"
	"projecttracker/app/models"
)

func GetProjectsAPI(c *fiber.Ctx) error {
	filters := ProjectFilters{
		Status:   c.Query("status"),
		ClientID: c.Query("client_id"),
	}

	projects, err := GetAllProjects(config.GetDB(), filters)
	if err != nil {
		return err
	}
	return c.JSON(projects)
}

func GetProjectAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	project, err := GetProjectByID(config.GetDB(), id)
	if err != nil {
		return err
	}
	return c.JSON(project)
}

func CreateProjectAPI(c *fiber.Ctx) error {
	project := models.Project{Status: models.ProjectActive}
	if err := c.BodyParser(&project); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid request body"})
	}

	if err := CreateProject(config.GetDB(), &project); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func UpdateProjectAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	patch, err := database.ParsePatch(c.Body())
	if err != nil {
		return err
	}

	project, err := UpdateProject(config.GetDB(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(project)
}

func DeleteProjectAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid id"})
	}

	if err := DeleteProject(config.GetDB(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
