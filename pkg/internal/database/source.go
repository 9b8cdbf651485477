package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var C *gorm.DB

func NewGorm() error {
	var err error
	dialector := postgres.New(postgres.Config{
		DSN:                  viper.GetString("database.dsn"),
		PreferSimpleProtocol: viper.GetBool("database.prefer_simple_protocol"),
	})
	C, err = gorm.Open(dialector, &gorm.Config{
		// Unique violations from the store surface as gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger: logger.New(&log.Logger, logger.Config{
			SlowThreshold: 10 * time.Second,
			LogLevel:      logger.Warn,
			Colorful:      false,
		}),
	})

	return err
}
