package api

import (
	"github.com/unilink-app/timeline/pkg/internal/http/exts"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/services"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/gofiber/fiber/v2"
)

func getProfile(c *fiber.Ctx) error {
	account, err := services.GetProfile(c.Params("account"))
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(account)
}

func updateMyProfile(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Name        *string  `json:"name" validate:"omitempty,min=3,max=24,alphanum"`
		Nick        *string  `json:"nick" validate:"omitempty,max=64"`
		Description *string  `json:"description" validate:"omitempty,max=1024"`
		Avatar      *string  `json:"avatar"`
		Tags        []string `json:"tags"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.UpdateProfile(user, services.ProfileFields{
		Name:        data.Name,
		Nick:        data.Nick,
		Description: data.Description,
		Avatar:      data.Avatar,
		Tags:        data.Tags,
	})
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(account)
}
