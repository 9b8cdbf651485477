package api

import (
	"github.com/unilink-app/timeline/pkg/internal/http/exts"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/services"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/gofiber/fiber/v2"
)

func likePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	like, err := services.LikePost(user, uint(id))
	if err != nil {
		return status.Translate(err)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

func unlikePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	if err := services.UnlikePost(user, uint(id)); err != nil {
		return status.Translate(err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func listMyLikes(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	likes, err := services.ListAccountLikes(user.ID)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(likes)
}

func listAccountLikes(c *fiber.Ctx) error {
	account, err := services.GetAccount(c.Params("account"))
	if err != nil {
		return status.Translate(err)
	}

	likes, err := services.ListAccountLikes(account.ID)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(likes)
}
