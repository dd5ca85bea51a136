package follow

import (
	"errors"

	"github.com/noteflow/core/internal/models"
	"github.com/noteflow/core/internal/pkg/pagination"
	"github.com/noteflow/core/internal/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Follow creates the edge follower -> followed. Idempotent: following twice
// leaves exactly one edge and bumps counters exactly once. Counters are only
// adjusted when a row was actually inserted.
func (s *Service) Follow(followerID, followedID string) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.FollowModel{
		FollowerID: followerID,
		FollowedID: followedID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Edge already existed.
		return nil
	}

	return s.adjustCounters(followerID, followedID, +1)
}

// Unfollow removes the edge and decrements counters only when a row was removed.
func (s *Service) Unfollow(followerID, followedID string) error {
	res := s.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.FollowModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil
	}

	return s.adjustCounters(followerID, followedID, -1)
}

// adjustCounters is the single place the denormalized follow counters move.
// Atomic column arithmetic; never read-modify-write.
func (s *Service) adjustCounters(followerID, followedID string, delta int) error {
	var followingExpr, followersExpr interface{}
	if delta > 0 {
		followingExpr = gorm.Expr("following_count + ?", delta)
		followersExpr = gorm.Expr("followers_count + ?", delta)
	} else {
		followingExpr = gorm.Expr("GREATEST(following_count - ?, 0)", -delta)
		followersExpr = gorm.Expr("GREATEST(followers_count - ?, 0)", -delta)
	}

	if err := s.db.Model(&models.ProfileModel{}).
		Where("user_id = ?", followerID).
		UpdateColumn("following_count", followingExpr).Error; err != nil {
		return err
	}
	return s.db.Model(&models.ProfileModel{}).
		Where("user_id = ?", followedID).
		UpdateColumn("followers_count", followersExpr).Error
}

// FollowedBy returns the set of user IDs the given user follows.
// This is the "friends" set the visibility resolver consumes.
func (s *Service) FollowedBy(userID string) ([]string, error) {
	if userID == "" {
		return nil, nil
	}
	var ids []string
	err := s.db.Model(&models.FollowModel{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error
	return ids, err
}

// IsFollowing reports whether the edge follower -> followed exists.
func (s *Service) IsFollowing(followerID, followedID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.FollowModel{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// Followers lists the profiles of users following userID.
func (s *Service) Followers(userID string, q pagination.Query) ([]models.ProfileModel, response.Pagination, error) {
	tx := s.db.Model(&models.ProfileModel{}).
		Joins("JOIN follows ON follows.follower_id = profiles.user_id").
		Where("follows.followed_id = ?", userID).
		Order("follows.created_at DESC")

	var profiles []models.ProfileModel
	pag, err := pagination.Paginate(tx, q, &profiles)
	return profiles, pag, err
}

// Following lists the profiles of users userID follows.
func (s *Service) Following(userID string, q pagination.Query) ([]models.ProfileModel, response.Pagination, error) {
	tx := s.db.Model(&models.ProfileModel{}).
		Joins("JOIN follows ON follows.followed_id = profiles.user_id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC")

	var profiles []models.ProfileModel
	pag, err := pagination.Paginate(tx, q, &profiles)
	return profiles, pag, err
}
