package bookmark

import (
	"errors"

	"github.com/noteflow/core/internal/models"
	"github.com/noteflow/core/internal/modules/follow"
	"github.com/noteflow/core/internal/modules/visibility"
	"github.com/noteflow/core/internal/pkg/pagination"
	"github.com/noteflow/core/internal/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotVisible = errors.New("note not found")

type Service struct {
	db      *gorm.DB
	follows *follow.Service
}

func NewService(db *gorm.DB, follows *follow.Service) *Service {
	return &Service{db: db, follows: follows}
}

// Toggle bookmarks the note for the user, or removes the bookmark if present.
// Returns true when the note is bookmarked after the call.
func (s *Service) Toggle(userID, noteID string) (bool, error) {
	visible, err := s.noteVisible(noteID, userID)
	if err != nil {
		return false, err
	}
	if !visible {
		return false, ErrNotVisible
	}

	res := s.db.Where("user_id = ? AND note_id = ?", userID, noteID).
		Delete(&models.BookmarkModel{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	err = s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.BookmarkModel{
		UserID: userID,
		NoteID: noteID,
	}).Error
	return err == nil, err
}

// List returns the user's bookmarks, newest first. The visibility filter sits
// inside the query so the pagination total agrees with the rows returned: notes
// that became invisible since bookmarking (visibility tightened, unfollowed)
// drop out, and deleted notes are excluded by the join condition.
func (s *Service) List(userID string, q pagination.Query) ([]models.BookmarkModel, response.Pagination, error) {
	followed, err := s.follows.FollowedBy(userID)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	tx := s.listQuery(userID, followed).Preload("Note.Tags")
	var bookmarks []models.BookmarkModel
	pag, err := pagination.Paginate(tx, q, &bookmarks)
	return bookmarks, pag, err
}

func (s *Service) listQuery(userID string, followed []string) *gorm.DB {
	return s.db.Model(&models.BookmarkModel{}).
		Joins("JOIN notes ON notes.id = bookmarks.note_id AND notes.deleted_at IS NULL").
		Where("bookmarks.user_id = ?", userID).
		Scopes(visibility.ScopeTable("notes", userID, followed)).
		Order("bookmarks.created_at DESC")
}

func (s *Service) noteVisible(noteID, viewerID string) (bool, error) {
	var n models.NoteModel
	if err := s.db.Select("id, user_id, visibility").First(&n, "id = ?", noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if visibility.Visible(&n, viewerID, nil) {
		return true, nil
	}
	followed, err := s.follows.FollowedBy(viewerID)
	if err != nil {
		return false, err
	}
	return visibility.Visible(&n, viewerID, visibility.NewFollowSet(followed)), nil
}
