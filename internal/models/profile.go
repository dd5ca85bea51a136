package models

import "time"

// Profile visibility tiers.
const (
	ProfilePublic  = "public"
	ProfilePrivate = "private"
)

// ProfileModel is per-user public metadata, created lazily on first edit.
// The counters are a denormalized cache; the follow edge set and the notes table
// are the source of truth and the profile service can recount from them.
type ProfileModel struct {
	Base
	UserID       string      `json:"-"              gorm:"uniqueIndex;not null"`
	Username     string      `json:"username"       gorm:"uniqueIndex;not null"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Avatar       string      `json:"avatar"`
	CoverPhoto   string      `json:"cover_photo"`
	Bio          string      `json:"bio"            gorm:"type:text"`
	Location     string      `json:"location"`
	Occupation   string      `json:"occupation"`
	FieldOfStudy string      `json:"field_of_study"`
	Education    string      `json:"education"`
	Website      string      `json:"website"`
	Birthday     *time.Time  `json:"birthday"`
	Gender       string      `json:"gender"`
	SocialLinks  StringSlice `json:"social_links"   gorm:"type:json;serializer:json"`

	FollowersCount int `json:"followers_count" gorm:"default:0"`
	FollowingCount int `json:"following_count" gorm:"default:0"`
	NotesCount     int `json:"notes_count"     gorm:"default:0"`

	Visibility string `json:"visibility" gorm:"default:'public'"`
	Theme      string `json:"theme"      gorm:"default:'light'"`
	Language   string `json:"language"   gorm:"default:'en'"`

	MentionNotifications  bool   `json:"mention_notifications"  gorm:"default:true"`
	CommentNotifications  bool   `json:"comment_notifications"  gorm:"default:true"`
	CollabNotifications   bool   `json:"collab_notifications"   gorm:"default:true"`
	UpdateNotifications   bool   `json:"update_notifications"   gorm:"default:false"`
	NotificationFrequency string `json:"notification_frequency" gorm:"default:'immediate'"`

	FontSize   string `json:"font_size"   gorm:"default:'medium'"`
	FontFamily string `json:"font_family" gorm:"default:'Inter'"`
	Autosave   bool   `json:"autosave"    gorm:"default:true"`
	Spellcheck bool   `json:"spellcheck"  gorm:"default:true"`
}

func (ProfileModel) TableName() string { return "profiles" }
