package services

import (
	"errors"
	"fmt"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LikePost attaches a like edge between an account and a post. One like per
// pair; the composite primary key rejects the second attempt so there is no
// check-then-write window to race through.
func LikePost(user models.Account, postID uint) (models.Like, error) {
	like := models.Like{
		AccountID: user.ID,
		PostID:    postID,
	}

	var post models.Post
	if err := database.C.Where("id = ?", postID).Select("id").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return like, status.NotFound(fmt.Sprintf("post #%d was not found", postID))
		}
		return like, status.Storage("unable to find post to like", err)
	}

	if err := database.C.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return like, status.Conflict(fmt.Sprintf("post #%d is already liked", postID))
		}
		return like, status.Storage("unable to create like", err)
	}

	log.Debug().Uint("account", user.ID).Uint("post", postID).Msg("Liked a post.")
	return like, nil
}

// UnlikePost detaches the like edge. Detaching an edge that never existed
// is reported, not crashed on.
func UnlikePost(user models.Account, postID uint) error {
	res := database.C.
		Where("account_id = ? AND post_id = ?", user.ID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return status.Storage("unable to delete like", res.Error)
	}
	if res.RowsAffected == 0 {
		return status.NotFound(fmt.Sprintf("post #%d was not liked", postID))
	}

	log.Debug().Uint("account", user.ID).Uint("post", postID).Msg("Unliked a post.")
	return nil
}

func ListAccountLikes(accountID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := database.C.
		Where("account_id = ?", accountID).
		Preload("Post").
		Preload("Post.Author").
		Order("created_at DESC").
		Find(&likes).Error; err != nil {
		return likes, status.Storage("unable to list likes", err)
	}
	return likes, nil
}
