package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/identity"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func FilterPostWithTag(tx *gorm.DB, alias string) *gorm.DB {
	aliases := lo.Map(strings.Split(alias, ","), func(item string, index int) string {
		return strings.ToLower(strings.TrimSpace(item))
	})
	return tx.Joins("JOIN post_tags ON posts.id = post_tags.post_id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("tags.alias IN ?", aliases).
		Group("posts.id").
		Having("COUNT(DISTINCT tags.id) = ?", len(aliases))
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func PreloadPostGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Tags").
		Preload("Author").
		Preload("Author.Tags").
		Preload("Likes").
		Preload("Likes.Account").
		Preload("Replies").
		Preload("Replies.Author").
		Preload("Replies.Author.Tags")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadPostGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, status.NotFound(fmt.Sprintf("post #%d was not found", id))
		}
		return item, status.Storage("unable to get post", err)
	}

	item.Metric = models.PostMetric{
		ReplyCount: CountPostReply(item.ID),
		LikeCount:  CountPostLikes(item.ID),
	}

	EnrichPostAvatars([]*models.Post{&item})

	return item, nil
}

// GetPostWithAuthor resolves a post only when the given account authored it.
// The id is matched explicitly so a zero value can never fall through to an
// unrelated row of the same author.
func GetPostWithAuthor(id uint, authorID uint) (models.Post, error) {
	var item models.Post
	if err := database.C.
		Where("id = ? AND author_id = ?", id, authorID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, status.NotFound(fmt.Sprintf("post #%d was not found", id))
		}
		return item, status.Storage("unable to get post", err)
	}
	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func CountPostReply(id uint) int64 {
	var count int64
	if err := database.C.Model(&models.Reply{}).
		Where("post_id = ?", id).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func CountPostLikes(id uint) int64 {
	var count int64
	if err := database.C.Model(&models.Like{}).
		Where("post_id = ?", id).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]*models.Post, error) {
	if take < 0 {
		take = 0
	}
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadPostGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, status.Storage("unable to list posts", err)
	}

	idx := lo.Map(items, func(item *models.Post, index int) uint {
		return item.ID
	})
	itemMap := lo.SliceToMap(items, func(item *models.Post) (uint, *models.Post) {
		return item.ID, item
	})

	// Load reply counts
	var replies []struct {
		PostID uint
		Count  int64
	}
	if err := database.C.Model(&models.Reply{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&replies).Error; err != nil {
		return items, status.Storage("unable to count post replies", err)
	}
	for _, info := range replies {
		if post, ok := itemMap[info.PostID]; ok {
			post.Metric.ReplyCount = info.Count
		}
	}

	// Load like counts
	var likes []struct {
		PostID uint
		Count  int64
	}
	if err := database.C.Model(&models.Like{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&likes).Error; err != nil {
		return items, status.Storage("unable to count post likes", err)
	}
	for _, info := range likes {
		if post, ok := itemMap[info.PostID]; ok {
			post.Metric.LikeCount = info.Count
		}
	}

	EnrichPostAvatars(items)

	return items, nil
}

// EnrichPostAvatars overlays each author's freshly resolved avatar onto the
// loaded posts. One author's silent identity lookup degrades that author's
// posts only; the rest of the batch is untouched.
func EnrichPostAvatars(items []*models.Post) {
	authors := map[string]string{}
	for _, item := range items {
		if len(item.Author.ExternalID) == 0 {
			continue
		}
		if _, done := authors[item.Author.ExternalID]; done {
			continue
		}
		avatar, err := identity.GetUserAvatar(item.Author.ExternalID)
		if err != nil {
			log.Warn().Err(err).Str("account", item.Author.Name).Msg("Unable to resolve author avatar, leaving the stored one...")
			avatar = ""
		}
		authors[item.Author.ExternalID] = avatar
	}

	for _, item := range items {
		if avatar, ok := authors[item.Author.ExternalID]; ok && len(avatar) > 0 {
			item.Author.Avatar = avatar
		}
	}
}

func NewPost(author models.Account, content string, tagNames []string, attachments []string) (models.Post, error) {
	var item models.Post
	if len(content) == 0 && len(attachments) == 0 {
		return item, status.InvalidInput("content or attachments are required")
	}

	tags, err := ResolveTags(tagNames)
	if err != nil {
		return item, err
	}

	log.Debug().Str("author", author.Name).Msg("Posting a post...")
	start := time.Now()

	item = models.Post{
		Content:     content,
		Language:    DetectLanguage(content),
		Attachments: datatypes.NewJSONSlice(attachments),
		Tags:        tags,
		AuthorID:    author.ID,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, status.Storage("unable to create post", err)
	}

	item.Author = author

	log.Debug().Dur("elapsed", time.Since(start)).Uint("id", item.ID).Msg("The post is posted.")
	return item, nil
}

// DeletePostCascade removes a post with everything hanging off it. The
// children go first so a failure part way through can leave a childless
// post behind, but never orphaned replies or likes; the store is treated as
// cascade-unaware.
func DeletePostCascade(post models.Post) error {
	if err := database.C.Where("post_id = ?", post.ID).Delete(&models.Reply{}).Error; err != nil {
		return status.Storage("unable to delete post replies", err)
	}
	if err := database.C.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
		return status.Storage("unable to delete post likes", err)
	}
	if err := database.C.Delete(&post).Error; err != nil {
		return status.Storage("unable to delete post", err)
	}

	log.Debug().Uint("id", post.ID).Msg("The post is deleted with its replies and likes.")
	return nil
}
