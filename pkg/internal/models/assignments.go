package models

import "time"

type Assignment struct {
	BaseModel

	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
