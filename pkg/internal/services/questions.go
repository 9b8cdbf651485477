package services

import (
	"errors"
	"fmt"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"gorm.io/gorm"
)

func GetQuestion(id uint) (models.Question, error) {
	var item models.Question
	if err := database.C.
		Preload("Author").
		Preload("Author.Tags").
		Preload("Replies", "parent_reply_id IS NULL").
		Preload("Replies.Author").
		Preload("Replies.ChildReplies").
		Preload("Replies.ChildReplies.Author").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, status.NotFound(fmt.Sprintf("question #%d was not found", id))
		}
		return item, status.Storage("unable to get question", err)
	}
	return item, nil
}

func ListQuestions(take int, offset int) ([]models.Question, error) {
	if take < 0 {
		take = 0
	}
	if take > 100 {
		take = 100
	}

	var items []models.Question
	if err := database.C.
		Preload("Author").
		Preload("Author.Tags").
		Preload("Replies", "parent_reply_id IS NULL").
		Preload("Replies.Author").
		Preload("Replies.ChildReplies").
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, status.Storage("unable to list questions", err)
	}

	return items, nil
}

func NewQuestion(author models.Account, title, description string) (models.Question, error) {
	var item models.Question
	if len(title) == 0 {
		return item, status.InvalidInput("title is required")
	}

	item = models.Question{
		Title:       title,
		Description: description,
		Language:    DetectLanguage(description),
		AuthorID:    author.ID,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, status.Storage("unable to create question", err)
	}

	item.Author = author
	return item, nil
}

// NewQuestionReply threads a reply into a question; a parent reply nests it
// one level deeper.
func NewQuestionReply(author models.Account, questionID uint, parentReplyID *uint, content string) (models.QuestionReply, error) {
	var item models.QuestionReply
	if len(content) == 0 {
		return item, status.InvalidInput("content is required")
	}

	var question models.Question
	if err := database.C.Where("id = ?", questionID).Select("id").First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, status.NotFound(fmt.Sprintf("question #%d was not found", questionID))
		}
		return item, status.Storage("unable to find question to reply", err)
	}

	if parentReplyID != nil {
		var parent models.QuestionReply
		if err := database.C.
			Where("id = ? AND question_id = ?", *parentReplyID, questionID).
			Select("id").First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return item, status.NotFound(fmt.Sprintf("parent reply #%d was not found on question #%d", *parentReplyID, questionID))
			}
			return item, status.Storage("unable to find parent reply", err)
		}
	}

	item = models.QuestionReply{
		Content:       content,
		QuestionID:    questionID,
		ParentReplyID: parentReplyID,
		AuthorID:      author.ID,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, status.Storage("unable to create question reply", err)
	}

	item.Author = author
	return item, nil
}
