package db

import (
	"errors"

	"fleet-backend/db/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultAdmin creates the bootstrap admin account if no user exists with
// the configured email. Skipped entirely when ADMIN_EMAIL is unset, so a
// production deployment can manage its own accounts.
func SeedDefaultAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:       uuid.New(),
		FullName: "Fleet Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     models.AdminRole,
	}
	return db.Create(&admin).Error
}
