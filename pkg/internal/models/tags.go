package models

type Tag struct {
	BaseModel

	Alias string `json:"alias" gorm:"uniqueIndex" validate:"lowercase"`
	Name  string `json:"name"`

	Accounts []Account `json:"accounts" gorm:"many2many:account_tags"`
	Posts    []Post    `json:"posts" gorm:"many2many:post_tags"`
}
