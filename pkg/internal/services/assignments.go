package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"gorm.io/gorm"
)

func ListAssignments(take int, offset int) ([]models.Assignment, error) {
	if take < 0 {
		take = 0
	}
	if take > 100 {
		take = 100
	}

	var items []models.Assignment
	if err := database.C.
		Preload("Author").
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, status.Storage("unable to list assignments", err)
	}

	return items, nil
}

func GetAssignment(id uint) (models.Assignment, error) {
	var item models.Assignment
	if err := database.C.
		Preload("Author").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, status.NotFound(fmt.Sprintf("assignment #%d was not found", id))
		}
		return item, status.Storage("unable to get assignment", err)
	}
	return item, nil
}

func NewAssignment(author models.Account, title, description string, deadline *time.Time) (models.Assignment, error) {
	var item models.Assignment
	if len(title) == 0 {
		return item, status.InvalidInput("title is required")
	}

	item = models.Assignment{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		AuthorID:    author.ID,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, status.Storage("unable to create assignment", err)
	}

	item.Author = author
	return item, nil
}

func DeleteAssignment(item models.Assignment) error {
	if err := database.C.Delete(&item).Error; err != nil {
		return status.Storage("unable to delete assignment", err)
	}
	return nil
}
