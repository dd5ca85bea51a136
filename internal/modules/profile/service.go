package profile

import (
	"errors"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/noteflow/core/internal/models"
	"gorm.io/gorm"
)

var ErrUsernameTaken = errors.New("username already taken")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GetByUserID(userID string) (*models.ProfileModel, error) {
	var p models.ProfileModel
	if err := s.db.First(&p, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) GetByUsername(username string) (*models.ProfileModel, error) {
	var p models.ProfileModel
	if err := s.db.First(&p, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert applies the edit to the user's profile, creating it lazily on first
// edit. Duplicate usernames surface as ErrUsernameTaken.
func (s *Service) Upsert(userID string, dto *UpdateProfileDTO) (*models.ProfileModel, error) {
	existing, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		p := models.ProfileModel{UserID: userID}
		dto.applyTo(&p)
		if p.Username == "" {
			p.Username = userID // placeholder until the user picks one
		}
		if err := s.db.Create(&p).Error; err != nil {
			if isDuplicateUsernameError(err) {
				return nil, ErrUsernameTaken
			}
			return nil, err
		}
		return &p, nil
	}

	updates := dto.updates()
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.db.Model(existing).Updates(updates).Error; err != nil {
		if isDuplicateUsernameError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return existing, nil
}

// RecountFor recomputes the denormalized counters from the source-of-truth
// sets. The counters are a cache; this is the repair path for drift.
func (s *Service) RecountFor(userID string) (*models.ProfileModel, error) {
	p, err := s.GetByUserID(userID)
	if err != nil || p == nil {
		return p, err
	}

	var followers, following, notes int64
	if err := s.db.Model(&models.FollowModel{}).Where("followed_id = ?", userID).Count(&followers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.FollowModel{}).Where("follower_id = ?", userID).Count(&following).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.NoteModel{}).Where("user_id = ?", userID).Count(&notes).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"followers_count": followers,
		"following_count": following,
		"notes_count":     notes,
	}
	if err := s.db.Model(p).Updates(updates).Error; err != nil {
		return nil, err
	}
	p.FollowersCount = int(followers)
	p.FollowingCount = int(following)
	p.NotesCount = int(notes)
	return p, nil
}

func isDuplicateUsernameError(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return strings.Contains(mysqlErr.Message, "username")
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") && strings.Contains(msg, "username")
}
