package service

import (
	"errors"
	"strings"

	"github.com/threadcraft/internal/db"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordMissing    = errors.New("password is required")
)

// AuthService verifies administrator credentials against the database.
type AuthService struct {
	db *gorm.DB
}

// NewAuthService returns a new AuthService instance.
func NewAuthService(gdb *gorm.DB) *AuthService {
	return &AuthService{db: gdb}
}

// Authenticate checks a username/password pair and returns the matching
// administrator. Unknown usernames and wrong passwords both yield
// ErrInvalidCredentials so the response never reveals which part was wrong.
func (s *AuthService) Authenticate(username, password string) (*db.Admin, error) {
	var admin db.Admin
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

// ChangePassword re-verifies the current password and stores a hash of the
// new one.
func (s *AuthService) ChangePassword(adminID uint, current, next string) error {
	if strings.TrimSpace(next) == "" {
		return ErrPasswordMissing
	}

	var admin db.Admin
	if err := s.db.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !admin.CheckPassword(current) {
		return ErrInvalidCredentials
	}

	if err := admin.SetPassword(next); err != nil {
		return err
	}

	return s.db.Save(&admin).Error
}
