package repositories

import (
	"CarePortal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type UserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	CreatePatientAccount(ctx context.Context, user *models.User, patient *models.Patient) error
	CreateDoctorAccount(ctx context.Context, user *models.User, doctor *models.Doctor) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// EmailExists compares emails without regard to case.
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("LOWER(email) = LOWER(?)", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// CreatePatientAccount inserts the user and its patient profile in one transaction.
func (r *userRepository) CreatePatientAccount(ctx context.Context, user *models.User, patient *models.Patient) error {
	return r.createAccount(ctx, user, func(tx *gorm.DB) error {
		patient.UserID = user.ID
		return tx.Create(patient).Error
	})
}

// CreateDoctorAccount inserts the user and its doctor profile in one transaction.
func (r *userRepository) CreateDoctorAccount(ctx context.Context, user *models.User, doctor *models.Doctor) error {
	return r.createAccount(ctx, user, func(tx *gorm.DB) error {
		doctor.UserID = user.ID
		return tx.Create(doctor).Error
	})
}

func (r *userRepository) createAccount(ctx context.Context, user *models.User, createProfile func(tx *gorm.DB) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Patient", "Doctor").Create(user).Error; err != nil {
			return err
		}
		return createProfile(tx)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("failed to create account: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}
