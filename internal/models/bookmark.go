package models

// BookmarkModel marks a note as saved by a user. One row per (user, note).
type BookmarkModel struct {
	HardBase
	UserID string `json:"user_id" gorm:"uniqueIndex:idx_bookmarks_user_note;not null"`
	NoteID string `json:"note_id" gorm:"uniqueIndex:idx_bookmarks_user_note;not null"`

	Note *NoteModel `json:"note,omitempty" gorm:"foreignKey:NoteID"`
}

func (BookmarkModel) TableName() string { return "bookmarks" }
