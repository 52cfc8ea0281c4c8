package repositories

import (
	"CarePortal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	GetDetails(ctx context.Context, id string) (*models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
}

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).Order("last_name, first_name").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to get doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return r.first(ctx, r.db.WithContext(ctx), "id = ?", id)
}

func (r *doctorRepository) GetByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	return r.first(ctx, r.db.WithContext(ctx), "user_id = ?", userID)
}

// GetDetails loads the doctor with its appointments, newest first.
func (r *doctorRepository) GetDetails(ctx context.Context, id string) (*models.Doctor, error) {
	q := r.db.WithContext(ctx).
		Preload("Appointments", func(db *gorm.DB) *gorm.DB {
			return db.Order("appointment_date DESC")
		}).
		Preload("Appointments.Patient")
	return r.first(ctx, q, "id = ?", id)
}

func (r *doctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	err := r.db.WithContext(ctx).Model(&models.Doctor{ID: doctor.ID}).
		Select("first_name", "last_name", "specialization", "phone").
		Updates(map[string]interface{}{
			"first_name":     doctor.FirstName,
			"last_name":      doctor.LastName,
			"specialization": doctor.Specialization,
			"phone":          doctor.Phone,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) first(ctx context.Context, q *gorm.DB, query string, args ...interface{}) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	if err := q.WithContext(ctx).Where(query, args...).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}
