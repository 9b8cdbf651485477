package api

import (
	"github.com/unilink-app/timeline/pkg/internal/http/exts"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/services"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/gofiber/fiber/v2"
)

func listPostReplies(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)
	id, _ := c.ParamsInt("postId", 0)

	items, err := services.ListPostReplies(uint(id), take, offset)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(items)
}

func createPostReply(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	var data struct {
		Content       string `json:"content" validate:"required,max=4096"`
		ParentReplyID *uint  `json:"parent_reply_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewReply(user, uint(id), data.ParentReplyID, data.Content)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(item)
}
