package models

// TagModel is a flat label attached to notes via the note_tags join table.
type TagModel struct {
	Base
	Name string `json:"name" gorm:"not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`
}

func (TagModel) TableName() string { return "tags" }
