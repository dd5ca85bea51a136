package note

import "github.com/noteflow/core/internal/models"

type CreateNoteDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Visibility  string `json:"visibility"`
}

type UpdateNoteDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Visibility  *string `json:"visibility"`
}

type RateDTO struct {
	Rating int `json:"rating" binding:"required"`
}

type noteResponse struct {
	*models.NoteModel
	AverageRating float64 `json:"average_rating"`
	HTML          string  `json:"html,omitempty"`
}

func toResponse(n *models.NoteModel, html string) noteResponse {
	return noteResponse{
		NoteModel:     n,
		AverageRating: n.AverageRating(),
		HTML:          html,
	}
}
