package models

// Account is the locally stored mirror of a member. The member's identity is
// held by the external identity provider and linked via ExternalID; the
// record here carries everything the timeline itself needs.
type Account struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Nick        string `json:"nick"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	ExternalID  string `json:"external_id" gorm:"uniqueIndex"`

	Tags  []Tag  `json:"tags" gorm:"many2many:account_tags"`
	Posts []Post `json:"posts" gorm:"foreignKey:AuthorID"`
}
