package api

import (
	"github.com/unilink-app/timeline/pkg/internal/services"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/gofiber/fiber/v2"
)

func getFeed(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	feed, err := services.GetFeed(limit)
	if err != nil {
		return status.Translate(err)
	}

	return c.JSON(fiber.Map{
		"count": len(feed),
		"data":  feed,
	})
}
