package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Content     string                      `json:"content"`
	Language    string                      `json:"language"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	Tags    []Tag   `json:"tags" gorm:"many2many:post_tags"`
	Replies []Reply `json:"replies" gorm:"foreignKey:PostID"`
	Likes   []Like  `json:"likes" gorm:"foreignKey:PostID"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	Metric PostMetric `json:"metric" gorm:"-"`
}

type Reply struct {
	BaseModel

	Content string `json:"content"`

	PostID        uint    `json:"post_id"`
	ParentReplyID *uint   `json:"parent_reply_id"`
	ChildReplies  []Reply `json:"child_replies" gorm:"foreignKey:ParentReplyID"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}

// Like has no surrogate key; the (account, post) pair is the identity and
// the store's composite primary key is what rejects a double like.
type Like struct {
	AccountID uint      `json:"account_id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Account Account `json:"account"`
	Post    Post    `json:"post"`
}

type PostMetric struct {
	ReplyCount int64 `json:"reply_count"`
	LikeCount  int64 `json:"like_count"`
}
