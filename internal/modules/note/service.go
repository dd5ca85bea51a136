package note

import (
	"errors"

	"github.com/noteflow/core/internal/models"
	"github.com/noteflow/core/internal/modules/follow"
	"github.com/noteflow/core/internal/modules/visibility"
	"github.com/noteflow/core/internal/pkg/pagination"
	"github.com/noteflow/core/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	ErrNotOwner      = errors.New("only the note owner may do this")
	ErrBadVisibility = errors.New("unknown visibility tier")
	ErrBadRating     = errors.New("rating must be between 1 and 5")
)

type Service struct {
	db      *gorm.DB
	follows *follow.Service
}

func NewService(db *gorm.DB, follows *follow.Service) *Service {
	return &Service{db: db, follows: follows}
}

// visibleScope builds the visibility filter for a viewer, consulting the
// follow graph for the friends tier.
func (s *Service) visibleScope(viewerID string) (func(*gorm.DB) *gorm.DB, error) {
	var followed []string
	if viewerID != "" {
		var err error
		followed, err = s.follows.FollowedBy(viewerID)
		if err != nil {
			return nil, err
		}
	}
	return visibility.Scope(viewerID, followed), nil
}

// List returns the notes the viewer may see, newest first.
func (s *Service) List(viewerID string, q pagination.Query) ([]models.NoteModel, response.Pagination, error) {
	scope, err := s.visibleScope(viewerID)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	tx := s.db.Model(&models.NoteModel{}).
		Scopes(scope).
		Preload("Owner.Profile").
		Preload("Tags").
		Order("created_at DESC")

	var notes []models.NoteModel
	pag, err := pagination.Paginate(tx, q, &notes)
	return notes, pag, err
}

// ListByUser returns a user's notes. The owner sees everything including
// private notes; everyone else goes through the visibility filter.
func (s *Service) ListByUser(targetUserID, viewerID string, q pagination.Query) ([]models.NoteModel, response.Pagination, error) {
	tx := s.db.Model(&models.NoteModel{}).
		Where("user_id = ?", targetUserID).
		Preload("Tags").
		Order("created_at DESC")

	if viewerID != targetUserID {
		scope, err := s.visibleScope(viewerID)
		if err != nil {
			return nil, response.Pagination{}, err
		}
		tx = tx.Scopes(scope)
	}

	var notes []models.NoteModel
	pag, err := pagination.Paginate(tx, q, &notes)
	return notes, pag, err
}

// GetByID loads a note and enforces visibility for the viewer.
// Returns (nil, nil) when the note does not exist or the viewer may not see it;
// hiding existence from unauthorized viewers.
func (s *Service) GetByID(id, viewerID string) (*models.NoteModel, error) {
	var n models.NoteModel
	if err := s.db.Preload("Owner.Profile").Preload("Tags").Preload("AI").
		First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	visible, err := s.viewerCanSee(&n, viewerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, nil
	}
	return &n, nil
}

func (s *Service) viewerCanSee(n *models.NoteModel, viewerID string) (bool, error) {
	if visibility.Visible(n, viewerID, nil) {
		return true, nil
	}
	if viewerID == "" || n.Visibility != models.VisibilityFriends {
		return false, nil
	}
	followed, err := s.follows.FollowedBy(viewerID)
	if err != nil {
		return false, err
	}
	return visibility.Visible(n, viewerID, visibility.NewFollowSet(followed)), nil
}

func (s *Service) Create(ownerID string, dto *CreateNoteDTO) (*models.NoteModel, error) {
	vis := dto.Visibility
	if vis == "" {
		vis = models.VisibilityPublic
	}
	if !models.ValidVisibility(vis) {
		return nil, ErrBadVisibility
	}

	n := models.NoteModel{
		UserID:      ownerID,
		Title:       dto.Title,
		Description: dto.Description,
		Content:     dto.Content,
		Visibility:  vis,
	}
	if err := s.db.Create(&n).Error; err != nil {
		return nil, err
	}

	// notes_count is a cache: incremented here, recomputable via profile recount.
	if err := s.adjustNotesCount(ownerID, +1); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Service) Update(id, actorID string, dto *UpdateNoteDTO) (*models.NoteModel, error) {
	n, err := s.getOwned(id, actorID)
	if err != nil || n == nil {
		return n, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Visibility != nil {
		if !models.ValidVisibility(*dto.Visibility) {
			return nil, ErrBadVisibility
		}
		updates["visibility"] = *dto.Visibility
	}
	if len(updates) == 0 {
		return n, nil
	}

	if err := s.db.Model(n).Updates(updates).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// Delete soft-deletes the note. Deleted notes disappear from every listing,
// the owner's included.
func (s *Service) Delete(id, actorID string) error {
	n, err := s.getOwned(id, actorID)
	if err != nil {
		return err
	}
	if n == nil {
		return gorm.ErrRecordNotFound
	}
	if err := s.db.Delete(n).Error; err != nil {
		return err
	}
	return s.adjustNotesCount(actorID, -1)
}

// getOwned loads a note and verifies ownership. (nil, nil) when absent.
func (s *Service) getOwned(id, actorID string) (*models.NoteModel, error) {
	var n models.NoteModel
	if err := s.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if n.UserID != actorID {
		return nil, ErrNotOwner
	}
	return &n, nil
}

func (s *Service) adjustNotesCount(userID string, delta int) error {
	var expr interface{}
	if delta > 0 {
		expr = gorm.Expr("notes_count + ?", delta)
	} else {
		expr = gorm.Expr("GREATEST(notes_count - ?, 0)", -delta)
	}
	return s.db.Model(&models.ProfileModel{}).
		Where("user_id = ?", userID).
		UpdateColumn("notes_count", expr).Error
}

// Rate adds a rating to a note the viewer can see. Atomic column arithmetic
// avoids lost updates under concurrent raters.
func (s *Service) Rate(id, viewerID string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrBadRating
	}
	n, err := s.GetByID(id, viewerID)
	if err != nil {
		return err
	}
	if n == nil {
		return gorm.ErrRecordNotFound
	}
	return s.db.Model(&models.NoteModel{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"ratings_sum":   gorm.Expr("ratings_sum + ?", rating),
			"ratings_count": gorm.Expr("ratings_count + 1"),
		}).Error
}

// RegisterDownload bumps the download counter for a visible note.
func (s *Service) RegisterDownload(id, viewerID string) error {
	n, err := s.GetByID(id, viewerID)
	if err != nil {
		return err
	}
	if n == nil {
		return gorm.ErrRecordNotFound
	}
	return s.db.Model(&models.NoteModel{}).Where("id = ?", id).
		UpdateColumn("downloads_count", gorm.Expr("downloads_count + 1")).Error
}

// AttachTag links a tag to an owned note.
func (s *Service) AttachTag(noteID, actorID, tagID string) error {
	n, err := s.getOwned(noteID, actorID)
	if err != nil {
		return err
	}
	if n == nil {
		return gorm.ErrRecordNotFound
	}
	var tag models.TagModel
	if err := s.db.First(&tag, "id = ?", tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}
	return s.db.Model(n).Association("Tags").Append(&tag)
}

// DetachTag unlinks a tag from an owned note.
func (s *Service) DetachTag(noteID, actorID, tagID string) error {
	n, err := s.getOwned(noteID, actorID)
	if err != nil {
		return err
	}
	if n == nil {
		return gorm.ErrRecordNotFound
	}
	return s.db.Model(n).Association("Tags").Delete(&models.TagModel{Base: models.Base{ID: tagID}})
}
