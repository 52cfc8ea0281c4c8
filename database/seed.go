package database

import (
	"CarePortal/models"
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap admin account when no Admin exists yet.
// It reports whether an account was created.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, passwordHash string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	admin := models.User{Email: email, Password: passwordHash, Role: models.RoleAdmin}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return false, err
	}
	log.Info().Str("email", email).Msg("seeded admin account")
	return true, nil
}

// SeedSampleDoctor creates one doctor account when the doctors table is empty.
func SeedSampleDoctor(ctx context.Context, db *gorm.DB, email, passwordHash string) (bool, error) {
	err := db.WithContext(ctx).First(&models.Doctor{}).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := models.User{Email: email, Password: passwordHash, Role: models.RoleDoctor}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Doctor{
			UserID:         user.ID,
			FirstName:      "Doctor",
			LastName:       "1",
			Specialization: "General Practice",
			Phone:          "+20 100 000 0001",
			Email:          email,
		}).Error
	})
	if err != nil {
		return false, err
	}
	log.Info().Str("email", email).Msg("seeded sample doctor")
	return true, nil
}
