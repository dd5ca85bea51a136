package models

import "time"

// UserModel is an account identity. Public-facing metadata lives on ProfileModel.
type UserModel struct {
	Base
	Name          string        `json:"name"`
	Email         string        `json:"email"           gorm:"uniqueIndex;not null"`
	Password      string        `json:"-"               gorm:"not null"`
	LastLoginTime *time.Time    `json:"last_login_time"`
	LastLoginIP   string        `json:"last_login_ip"`
	Profile       *ProfileModel `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string { return "users" }

// UserSession is a server-side login session bound to a JWT.
type UserSession struct {
	HardBase
	UserID    string     `json:"-"          gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:text"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func (UserSession) TableName() string { return "user_sessions" }
