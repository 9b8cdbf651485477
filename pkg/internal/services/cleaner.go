package services

import (
	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"

	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup sweeps out replies and likes whose post vanished,
// the leftovers of a cascade delete that failed between its steps.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range []any{&models.Reply{}, &models.Like{}} {
		res := database.C.
			Where("post_id NOT IN (?)", database.C.Model(&models.Post{}).Select("id")).
			Delete(model)
		if res.Error != nil {
			log.Error().Err(res.Error).Msg("An error occurred when running auto cleanup...")
			continue
		}
		count += res.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Auto maintain database accomplished.")
}
