package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

func SearchTags(take int, offset int, probe string) ([]models.Tag, error) {
	probe = "%" + strings.ToLower(probe) + "%"

	var tags []models.Tag
	err := database.C.Where("alias LIKE ?", probe).Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}

func ListTags(take int, offset int) ([]models.Tag, error) {
	var tags []models.Tag
	err := database.C.Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}

func GetTag(alias string) (models.Tag, error) {
	var tag models.Tag
	if err := database.C.Where(models.Tag{Alias: alias}).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tag, status.NotFound(fmt.Sprintf("tag %s was not found", alias))
		}
		return tag, status.Storage("unable to get tag", err)
	}
	return tag, nil
}

func GetTagWithID(id uint) (models.Tag, error) {
	var tag models.Tag
	if err := database.C.Where(models.Tag{
		BaseModel: models.BaseModel{ID: id},
	}).First(&tag).Error; err != nil {
		return tag, err
	}
	return tag, nil
}

// GetTagOrCreate resolves an alias to its tag, creating the tag when it does
// not exist yet. Losing a creation race against a concurrent caller is not
// an error; the store's unique index on alias reports it and the winner's
// row is re-read instead.
func GetTagOrCreate(alias, name string) (models.Tag, error) {
	alias = strings.ToLower(alias)
	var tag models.Tag
	if err := database.C.Where(models.Tag{Alias: alias}).First(&tag).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return tag, status.Storage("unable to look up tag", err)
		}

		tag = models.Tag{
			Alias: alias,
			Name:  name,
		}
		if err := database.C.Create(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				var existing models.Tag
				if err := database.C.Where(models.Tag{Alias: alias}).First(&existing).Error; err != nil {
					return existing, status.Storage("unable to re-read tag after creation race", err)
				}
				return existing, nil
			}
			return tag, status.Storage("unable to create tag", err)
		}
		return tag, nil
	}
	return tag, nil
}

// ResolveTags turns a set of free-text tag names into tag records. Blank
// names abort the whole batch before anything is written; duplicate names
// collapse to a single tag.
func ResolveTags(names []string) ([]models.Tag, error) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if len(name) == 0 {
			return nil, status.InvalidInput("tag names cannot be blank")
		}
		cleaned = append(cleaned, name)
	}

	cleaned = lo.UniqBy(cleaned, strings.ToLower)

	tags := make([]models.Tag, 0, len(cleaned))
	for _, name := range cleaned {
		tag, err := GetTagOrCreate(name, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, nil
}
