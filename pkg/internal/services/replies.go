package services

import (
	"errors"
	"fmt"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"gorm.io/gorm"
)

// NewReply attaches a reply to a post, optionally nested under another
// reply of the same post. Both parents must exist at creation time.
func NewReply(author models.Account, postID uint, parentReplyID *uint, content string) (models.Reply, error) {
	var item models.Reply
	if len(content) == 0 {
		return item, status.InvalidInput("content is required")
	}

	var post models.Post
	if err := database.C.Where("id = ?", postID).Select("id").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, status.NotFound(fmt.Sprintf("post #%d was not found", postID))
		}
		return item, status.Storage("unable to find post to reply", err)
	}

	if parentReplyID != nil {
		var parent models.Reply
		if err := database.C.
			Where("id = ? AND post_id = ?", *parentReplyID, postID).
			Select("id").First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return item, status.NotFound(fmt.Sprintf("parent reply #%d was not found on post #%d", *parentReplyID, postID))
			}
			return item, status.Storage("unable to find parent reply", err)
		}
	}

	item = models.Reply{
		Content:       content,
		PostID:        postID,
		ParentReplyID: parentReplyID,
		AuthorID:      author.ID,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, status.Storage("unable to create reply", err)
	}

	item.Author = author
	return item, nil
}

func ListPostReplies(postID uint, take int, offset int) ([]models.Reply, error) {
	if take < 0 {
		take = 0
	}
	if take > 100 {
		take = 100
	}

	var replies []models.Reply
	if err := database.C.
		Where("post_id = ? AND parent_reply_id IS NULL", postID).
		Preload("Author").
		Preload("Author.Tags").
		Preload("ChildReplies").
		Preload("ChildReplies.Author").
		Limit(take).Offset(offset).
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		return replies, status.Storage("unable to list replies", err)
	}

	return replies, nil
}
