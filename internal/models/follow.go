package models

// FollowModel is a directed follow edge. The unique pair index makes Follow idempotent.
type FollowModel struct {
	HardBase
	FollowerID string `json:"follower_id" gorm:"uniqueIndex:idx_follows_pair;not null"`
	FollowedID string `json:"followed_id" gorm:"uniqueIndex:idx_follows_pair;index;not null"`
}

func (FollowModel) TableName() string { return "follows" }
