package collab

import "time"

type GrantDTO struct {
	NoteID         string     `json:"note_id"         binding:"required"`
	CollaboratorID string     `json:"collaborator_id" binding:"required"`
	Role           string     `json:"role"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

type HeartbeatDTO struct {
	Page int `json:"page" binding:"min=0"`
}
