package models

type Question struct {
	BaseModel

	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`

	Replies []QuestionReply `json:"replies" gorm:"foreignKey:QuestionID"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}

type QuestionReply struct {
	BaseModel

	Content string `json:"content"`

	QuestionID    uint            `json:"question_id"`
	ParentReplyID *uint           `json:"parent_reply_id"`
	ChildReplies  []QuestionReply `json:"child_replies" gorm:"foreignKey:ParentReplyID"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
