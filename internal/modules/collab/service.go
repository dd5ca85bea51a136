package collab

import (
	"context"
	"errors"
	"time"

	"github.com/noteflow/core/internal/models"
	"github.com/noteflow/core/internal/pkg/pagination"
	"github.com/noteflow/core/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	ErrSelfGrant = errors.New("cannot grant collaboration to the note owner")
	ErrNotOwner  = errors.New("only the note owner may do this")
	ErrNotFound  = errors.New("collaboration not found")
	ErrBadRole   = errors.New("unknown collaboration role")
)

// staleAfter is how long a grant may sit without a heartbeat (or past its
// expiry) before the reaper flips it to ended. Bookkeeping only: reads always
// go through the Active predicate regardless.
const staleAfter = 24 * time.Hour

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Grant invites a collaborator onto a note. The owner must own the note and
// cannot grant to themselves. An already-active grant for the same pair is
// returned as-is instead of duplicated.
func (s *Service) Grant(noteID, ownerID, collaboratorID, role string, expiresAt *time.Time) (*models.CollaborationModel, error) {
	if collaboratorID == ownerID {
		return nil, ErrSelfGrant
	}
	if !models.ValidCollabRole(role) {
		return nil, ErrBadRole
	}

	var note models.NoteModel
	if err := s.db.Select("id, user_id").First(&note, "id = ?", noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if note.UserID != ownerID {
		return nil, ErrNotOwner
	}

	// Best-effort dedup: check-then-insert, so two concurrent grants for the
	// same pair can both land. Listings show both until one is ended.
	var existing models.CollaborationModel
	err := s.db.Scopes(Active(time.Now())).
		Where("note_id = ? AND collaborator_id = ?", noteID, collaboratorID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	grant := models.CollaborationModel{
		NoteID:         noteID,
		OwnerID:        ownerID, // denormalized copy of the note owner at grant time
		CollaboratorID: collaboratorID,
		Role:           role,
		Status:         models.CollabStatusActive,
		ExpiresAt:      expiresAt,
	}
	if err := s.db.Create(&grant).Error; err != nil {
		return nil, err
	}
	return &grant, nil
}

// Heartbeat records the collaborator's position. Rejected when the grant is
// not currently active; an expired-but-not-ended grant does not accept
// heartbeats.
func (s *Service) Heartbeat(id, collaboratorID string, page int) error {
	var grant models.CollaborationModel
	if err := s.db.First(&grant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if grant.CollaboratorID != collaboratorID {
		return ErrNotFound
	}
	if !CurrentlyActive(&grant, time.Now()) {
		return ErrNotFound
	}

	now := time.Now()
	return s.db.Model(&grant).Updates(map[string]interface{}{
		"current_page":   page,
		"last_active_at": now,
	}).Error
}

// End transitions the grant to ended. The owner or the collaborator themselves
// may end it; anyone else is rejected.
func (s *Service) End(id, actorID string) error {
	var grant models.CollaborationModel
	if err := s.db.First(&grant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !canEnd(&grant, actorID) {
		return ErrNotOwner
	}
	return s.db.Model(&grant).Update("status", models.CollabStatusEnded).Error
}

// GetByID loads a single grant.
func (s *Service) GetByID(id string) (*models.CollaborationModel, error) {
	var grant models.CollaborationModel
	if err := s.db.Preload("Collaborator.Profile").First(&grant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}

// ListActive returns the currently active grants on a note, with the
// collaborator's profile preloaded.
func (s *Service) ListActive(noteID string, q pagination.Query) ([]models.CollaborationModel, response.Pagination, error) {
	tx := s.db.Model(&models.CollaborationModel{}).
		Scopes(Active(time.Now())).
		Where("note_id = ?", noteID).
		Preload("Collaborator.Profile").
		Order("created_at ASC")

	var grants []models.CollaborationModel
	pag, err := pagination.Paginate(tx, q, &grants)
	return grants, pag, err
}

// ListForUser returns the active grants where the user is the collaborator.
func (s *Service) ListForUser(userID string, q pagination.Query) ([]models.CollaborationModel, response.Pagination, error) {
	tx := s.db.Model(&models.CollaborationModel{}).
		Scopes(Active(time.Now())).
		Where("collaborator_id = ?", userID).
		Preload("Note").
		Order("created_at DESC")

	var grants []models.CollaborationModel
	pag, err := pagination.Paginate(tx, q, &grants)
	return grants, pag, err
}

// EndStale flips grants to ended when they expired or went silent more than
// staleAfter ago. Correctness never depends on this running; it only keeps the
// table tidy. Returns the number of grants ended.
func (s *Service) EndStale(ctx context.Context) (int64, error) {
	now := time.Now()
	cutoff := now.Add(-staleAfter)
	res := s.db.WithContext(ctx).Model(&models.CollaborationModel{}).
		Where("status = ?", models.CollabStatusActive).
		Where("(expires_at IS NOT NULL AND expires_at < ?) OR (last_active_at IS NOT NULL AND last_active_at < ?)",
			now, cutoff).
		Update("status", models.CollabStatusEnded)
	return res.RowsAffected, res.Error
}
