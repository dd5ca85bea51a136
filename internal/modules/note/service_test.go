package note

import (
	"errors"
	"testing"

	"github.com/noteflow/core/internal/models"
)

func TestCreateRejectsUnknownVisibility(t *testing.T) {
	svc := NewService(nil, nil)
	if _, err := svc.Create("alice", &CreateNoteDTO{Title: "t", Visibility: "secret"}); !errors.Is(err, ErrBadVisibility) {
		t.Fatalf("Create(secret) = %v, want ErrBadVisibility", err)
	}
}

func TestRateRejectsOutOfRange(t *testing.T) {
	svc := NewService(nil, nil)
	for _, r := range []int{0, -1, 6} {
		if err := svc.Rate("note-1", "alice", r); !errors.Is(err, ErrBadRating) {
			t.Fatalf("Rate(%d) = %v, want ErrBadRating", r, err)
		}
	}
}

func TestAverageRating(t *testing.T) {
	n := &models.NoteModel{RatingsSum: 9, RatingsCount: 2}
	if got := n.AverageRating(); got != 4.5 {
		t.Fatalf("AverageRating = %v, want 4.5", got)
	}
	empty := &models.NoteModel{}
	if got := empty.AverageRating(); got != 0 {
		t.Fatalf("AverageRating(empty) = %v, want 0", got)
	}
}
