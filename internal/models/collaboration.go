package models

import "time"

// Collaboration roles.
const (
	CollabRoleEditor = "editor"
	CollabRoleViewer = "viewer"
)

// Collaboration statuses. Status is descriptive only: expiry is lazy, so read
// paths must combine status with expires_at instead of trusting status alone.
const (
	CollabStatusActive = "active"
	CollabStatusEnded  = "ended"
)

// ValidCollabRole reports whether r is a known collaboration role.
func ValidCollabRole(r string) bool {
	return r == CollabRoleEditor || r == CollabRoleViewer
}

// CollaborationModel is a time-bounded access grant on a note.
// OwnerID is a denormalized copy of the note's owner at grant time.
type CollaborationModel struct {
	HardBase
	NoteID         string `json:"note_id"         gorm:"index:idx_collabs_active;not null"`
	OwnerID        string `json:"owner_id"        gorm:"index;not null"`
	CollaboratorID string `json:"collaborator_id" gorm:"index:idx_collabs_active;not null"`
	Role           string `json:"role"            gorm:"default:'editor'"`
	Status         string `json:"status"          gorm:"index:idx_collabs_active;default:'active'"`

	CurrentPage  *int       `json:"current_page"`
	LastActiveAt *time.Time `json:"last_active_at"`
	ExpiresAt    *time.Time `json:"expires_at"    gorm:"index"`

	Note         *NoteModel `json:"note,omitempty"         gorm:"foreignKey:NoteID"`
	Collaborator *UserModel `json:"collaborator,omitempty" gorm:"foreignKey:CollaboratorID"`
}

func (CollaborationModel) TableName() string { return "collaborations" }
