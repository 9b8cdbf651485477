package api

import (
	"github.com/unilink-app/timeline/pkg/internal/services"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/gofiber/fiber/v2"
)

func listTags(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	var tags any
	var err error
	if probe := c.Query("probe"); len(probe) > 0 {
		tags, err = services.SearchTags(take, offset, probe)
	} else {
		tags, err = services.ListTags(take, offset)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(tags)
}

func getTag(c *fiber.Ctx) error {
	tag, err := services.GetTag(c.Params("tag"))
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(tag)
}
