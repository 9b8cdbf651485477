package services

import (
	"testing"
	"time"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostResolvesTags(t *testing.T) {
	author := seedAccount(t, "poster_tagged")

	post, err := NewPost(author, "studying for finals", []string{"Exams", "exams", "study"}, nil)
	require.NoError(t, err)
	require.Len(t, post.Tags, 2)

	loaded, err := GetPost(database.C, post.ID)
	require.NoError(t, err)
	aliases := lo.Map(loaded.Tags, func(tag models.Tag, _ int) string { return tag.Alias })
	assert.ElementsMatch(t, []string{"exams", "study"}, aliases)
}

func TestNewPostRequiresContent(t *testing.T) {
	author := seedAccount(t, "poster_empty")

	_, err := NewPost(author, "", nil, nil)
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeInvalidInput))
}

func TestDeletePostCascade(t *testing.T) {
	author := seedAccount(t, "cascade_author")
	replier := seedAccount(t, "cascade_replier")
	fan := seedAccount(t, "cascade_fan")
	post := seedPost(t, author, "doomed post")

	top, err := NewReply(replier, post.ID, nil, "top level reply")
	require.NoError(t, err)
	_, err = NewReply(author, post.ID, &top.ID, "nested reply")
	require.NoError(t, err)

	_, err = LikePost(fan, post.ID)
	require.NoError(t, err)
	_, err = LikePost(replier, post.ID)
	require.NoError(t, err)

	require.NoError(t, DeletePostCascade(post))

	// No replies or likes reference the post afterwards
	var replies int64
	require.NoError(t, database.C.Model(&models.Reply{}).Where("post_id = ?", post.ID).Count(&replies).Error)
	assert.EqualValues(t, 0, replies)
	assert.EqualValues(t, 0, CountPostLikes(post.ID))

	// And the post itself is gone
	_, err = GetPost(database.C, post.ID)
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeNotFound))
}

func TestListPostRecencyOrder(t *testing.T) {
	author := seedAccount(t, "recency_author")

	base := time.Now().Add(-time.Hour)
	var ids []uint
	for idx, content := range []string{"oldest", "middle", "newest"} {
		post := models.Post{
			BaseModel: models.BaseModel{CreatedAt: base.Add(time.Duration(idx) * time.Minute)},
			Content:   content,
			AuthorID:  author.ID,
		}
		require.NoError(t, database.C.Create(&post).Error)
		ids = append(ids, post.ID)
	}

	items, err := ListPost(FilterPostWithAuthor(database.C, author.ID), 10, 0, "created_at DESC")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, ids[2], items[0].ID)
	assert.Equal(t, ids[1], items[1].ID)
	assert.Equal(t, ids[0], items[2].ID)
}

func TestListPostFillsMetrics(t *testing.T) {
	author := seedAccount(t, "metric_author")
	fan := seedAccount(t, "metric_fan")
	post := seedPost(t, author, "count me")

	_, err := NewReply(fan, post.ID, nil, "a reply")
	require.NoError(t, err)
	_, err = LikePost(fan, post.ID)
	require.NoError(t, err)

	items, err := ListPost(FilterPostWithAuthor(database.C, author.ID), 10, 0, "created_at DESC")
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.EqualValues(t, 1, items[0].Metric.ReplyCount)
	assert.EqualValues(t, 1, items[0].Metric.LikeCount)
}

func TestGetPostWithAuthorScopesStrictly(t *testing.T) {
	author := seedAccount(t, "scoped_author")
	other := seedAccount(t, "scoped_other")
	first := seedPost(t, author, "oldest post, kept safe")
	seedPost(t, author, "newer post")

	// A zero id never falls through to an arbitrary post of the author
	_, err := GetPostWithAuthor(0, author.ID)
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeNotFound))

	// Another account cannot resolve it either
	_, err = GetPostWithAuthor(first.ID, other.ID)
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeNotFound))

	got, err := GetPostWithAuthor(first.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestListPostClampsNegativeTake(t *testing.T) {
	author := seedAccount(t, "clamp_author")
	seedPost(t, author, "not returned on a negative window")

	items, err := ListPost(FilterPostWithAuthor(database.C, author.ID), -5, 0, "created_at DESC")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNewReplyValidatesParents(t *testing.T) {
	author := seedAccount(t, "reply_author")

	_, err := NewReply(author, 424242, nil, "into the void")
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeNotFound))

	post := seedPost(t, author, "threaded post")
	missing := uint(535353)
	_, err = NewReply(author, post.ID, &missing, "under nothing")
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeNotFound))
}
