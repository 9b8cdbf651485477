package services

import (
	"testing"
	"time"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeedInterleavesByRecency(t *testing.T) {
	author := seedAccount(t, "feed_author")

	// Timestamps ahead of everything else seeded in the suite, so these
	// three entries own the head of the feed.
	base := time.Now().Add(time.Hour)
	post := models.Post{
		BaseModel: models.BaseModel{CreatedAt: base},
		Content:   "feed post",
		AuthorID:  author.ID,
	}
	require.NoError(t, database.C.Create(&post).Error)
	question := models.Question{
		BaseModel: models.BaseModel{CreatedAt: base.Add(time.Minute)},
		Title:     "feed question",
		AuthorID:  author.ID,
	}
	require.NoError(t, database.C.Create(&question).Error)
	assignment := models.Assignment{
		BaseModel: models.BaseModel{CreatedAt: base.Add(2 * time.Minute)},
		Title:     "feed assignment",
		AuthorID:  author.ID,
	}
	require.NoError(t, database.C.Create(&assignment).Error)

	feed, err := GetFeed(50)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(feed), 3)

	assert.Equal(t, "timeline.assignment", feed[0].Type)
	assert.Equal(t, "timeline.question", feed[1].Type)
	assert.Equal(t, "timeline.post", feed[2].Type)

	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].CreatedAt.After(feed[i-1].CreatedAt))
	}
}

func TestGetFeedClampsNegativeLimit(t *testing.T) {
	author := seedAccount(t, "feed_negative_author")
	seedPost(t, author, "never surfaces on a negative window")

	feed, err := GetFeed(-1)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestGetFeedHonorsLimit(t *testing.T) {
	author := seedAccount(t, "feed_limit_author")
	for i := 0; i < 3; i++ {
		seedPost(t, author, "filler post")
	}

	feed, err := GetFeed(2)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}
