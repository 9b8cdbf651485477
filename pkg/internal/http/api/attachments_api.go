package api

import (
	"fmt"
	"path/filepath"

	"github.com/unilink-app/timeline/pkg/internal/http/exts"
	"github.com/unilink-app/timeline/pkg/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func uploadAttachment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer src.Close()

	key := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	url, err := storage.UploadAttachment(c.Context(), key, src, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return c.JSON(fiber.Map{
		"key": key,
		"url": url,
	})
}
