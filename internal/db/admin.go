package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Admin is an administrator account. Only the bcrypt hash of the password is
// ever stored.
type Admin struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// SetPassword replaces the stored hash with a bcrypt hash of plaintext.
func (a *Admin) SetPassword(plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func (a *Admin) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plaintext)) == nil
}

// EnsureAdmin creates an administrator with the given credentials unless one
// with that username already exists. Blank credentials are ignored.
func EnsureAdmin(gdb *gorm.DB, username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	var existing Admin
	if err := gdb.Where("username = ?", trimmedUser).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		admin := Admin{Username: trimmedUser}
		if err := admin.SetPassword(trimmedPassword); err != nil {
			return err
		}

		return gdb.Create(&admin).Error
	}

	return nil
}
