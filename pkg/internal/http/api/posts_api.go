package api

import (
	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/http/exts"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/services"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func universalPostFilter(c *fiber.Ctx, tx *gorm.DB) (*gorm.DB, error) {
	if len(c.Query("author")) > 0 {
		author, err := services.GetAccount(c.Query("author"))
		if err != nil {
			return tx, status.Translate(err)
		}
		tx = services.FilterPostWithAuthor(tx, author.ID)
	}

	if len(c.Query("tag")) > 0 {
		tx = services.FilterPostWithTag(tx, c.Query("tag"))
	}

	return tx, nil
}

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(item)
}

func listPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := database.C

	var err error
	if tx, err = universalPostFilter(c, tx); err != nil {
		return err
	}

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset, "created_at DESC")
	if err != nil {
		return status.Translate(err)
	}

	// Probe matching folds kana, which the store cannot do; the loaded
	// window is filtered in place instead.
	if probe := c.Query("probe"); len(probe) > 0 {
		items = services.SearchPosts(items, probe)
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Content     string   `json:"content" validate:"max=4096"`
		Tags        []string `json:"tags"`
		Attachments []string `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(user, data.Content, data.Tags, data.Attachments)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)
	if id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "post id must be a positive number")
	}

	item, err := services.GetPostWithAuthor(uint(id), user.ID)
	if err != nil {
		return status.Translate(err)
	}

	if err := services.DeletePostCascade(item); err != nil {
		return status.Translate(err)
	}

	return c.SendStatus(fiber.StatusOK)
}
