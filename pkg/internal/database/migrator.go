package database

import (
	"github.com/unilink-app/timeline/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Tag{},
	&models.Post{},
	&models.Reply{},
	&models.Question{},
	&models.QuestionReply{},
	&models.Assignment{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Like{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
