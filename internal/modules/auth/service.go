package auth

import (
	"errors"
	"strings"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/noteflow/core/internal/models"
	sessionpkg "github.com/noteflow/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates an account with a bcrypt credential hash.
func (s *Service) Register(name, email, password string) (*models.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: string(hash),
	}
	if err := s.db.Create(&u).Error; err != nil {
		if isDuplicateEmailError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &u, nil
}

// Login verifies the credential and issues a session-bound token.
func (s *Service) Login(email, password, ip, ua string) (string, *models.UserModel, error) {
	var u models.UserModel
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Slow down credential probing.
			time.Sleep(3 * time.Second)
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, ErrWrongPassword
	}

	if err := s.recordLogin(&u, ip); err != nil {
		return "", nil, err
	}

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

// recordLogin persists the last-login bookkeeping; the in-memory fields are only
// set once the update succeeded.
func (s *Service) recordLogin(u *models.UserModel, ip string) error {
	now := time.Now()
	err := s.db.Model(u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	}).Error
	if err != nil {
		return err
	}
	u.LastLoginTime = &now
	u.LastLoginIP = ip
	return nil
}

// Logout revokes the current session.
func (s *Service) Logout(userID, sessionID string) error {
	err := sessionpkg.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Preload("Profile").First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func isDuplicateEmailError(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return strings.Contains(mysqlErr.Message, "email")
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") && strings.Contains(msg, "email")
}
