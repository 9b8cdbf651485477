package api

import (
	"time"

	"github.com/unilink-app/timeline/pkg/internal/http/exts"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/services"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/gofiber/fiber/v2"
)

func listAssignments(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	items, err := services.ListAssignments(take, offset)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(items)
}

func createAssignment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Title       string     `json:"title" validate:"required,max=256"`
		Description string     `json:"description" validate:"max=8192"`
		Deadline    *time.Time `json:"deadline"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewAssignment(user, data.Title, data.Description, data.Deadline)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(item)
}

func deleteAssignment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("assignmentId", 0)

	item, err := services.GetAssignment(uint(id))
	if err != nil {
		return status.Translate(err)
	}
	if item.AuthorID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "you cannot delete an assignment shared by others")
	}

	if err := services.DeleteAssignment(item); err != nil {
		return status.Translate(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
