package api

import (
	"github.com/unilink-app/timeline/pkg/internal/http/exts"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/services"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/gofiber/fiber/v2"
)

func listQuestions(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	items, err := services.ListQuestions(take, offset)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(items)
}

func getQuestion(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("questionId", 0)

	item, err := services.GetQuestion(uint(id))
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(item)
}

func createQuestion(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Title       string `json:"title" validate:"required,max=256"`
		Description string `json:"description" validate:"max=8192"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewQuestion(user, data.Title, data.Description)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(item)
}

func createQuestionReply(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("questionId", 0)

	var data struct {
		Content       string `json:"content" validate:"required,max=4096"`
		ParentReplyID *uint  `json:"parent_reply_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewQuestionReply(user, uint(id), data.ParentReplyID, data.Content)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(item)
}
