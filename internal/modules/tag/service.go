package tag

import (
	"errors"
	"regexp"
	"strings"

	"github.com/noteflow/core/internal/models"
	"github.com/noteflow/core/internal/modules/follow"
	"github.com/noteflow/core/internal/modules/visibility"
	"github.com/noteflow/core/internal/pkg/pagination"
	"github.com/noteflow/core/internal/pkg/response"
	"gorm.io/gorm"
)

var ErrEmptyName = errors.New("tag name is required")

type Service struct {
	db      *gorm.DB
	follows *follow.Service
}

func NewService(db *gorm.DB, follows *follow.Service) *Service {
	return &Service{db: db, follows: follows}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a tag name into its unique slug.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GetOrCreate resolves a tag by slug, creating it when new. Tags are shared
// flat labels, not per-user.
func (s *Service) GetOrCreate(name string) (*models.TagModel, error) {
	slug := Slugify(name)
	if slug == "" {
		return nil, ErrEmptyName
	}

	var tag models.TagModel
	err := s.db.First(&tag, "slug = ?", slug).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = models.TagModel{Name: strings.TrimSpace(name), Slug: slug}
	if err := s.db.Create(&tag).Error; err != nil {
		// Lost a create race; the winner's row serves.
		var again models.TagModel
		if err2 := s.db.First(&again, "slug = ?", slug).Error; err2 == nil {
			return &again, nil
		}
		return nil, err
	}
	return &tag, nil
}

// List returns all tags ordered by name.
func (s *Service) List(q pagination.Query) ([]models.TagModel, response.Pagination, error) {
	tx := s.db.Model(&models.TagModel{}).Order("name ASC")
	var tags []models.TagModel
	pag, err := pagination.Paginate(tx, q, &tags)
	return tags, pag, err
}

// NotesBySlug lists the notes carrying a tag, visibility-filtered for the viewer.
func (s *Service) NotesBySlug(slug, viewerID string, q pagination.Query) ([]models.NoteModel, response.Pagination, error) {
	var tag models.TagModel
	if err := s.db.First(&tag, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.Pagination{}, gorm.ErrRecordNotFound
		}
		return nil, response.Pagination{}, err
	}

	var followed []string
	if viewerID != "" {
		var err error
		followed, err = s.follows.FollowedBy(viewerID)
		if err != nil {
			return nil, response.Pagination{}, err
		}
	}

	tx := s.db.Model(&models.NoteModel{}).
		Joins("JOIN note_tags ON note_tags.note_model_id = notes.id").
		Where("note_tags.tag_model_id = ?", tag.ID).
		Scopes(visibility.Scope(viewerID, followed)).
		Order("notes.created_at DESC")

	var notes []models.NoteModel
	pag, err := pagination.Paginate(tx, q, &notes)
	return notes, pag, err
}
