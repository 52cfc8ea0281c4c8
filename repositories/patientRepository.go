package repositories

import (
	"CarePortal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PatientRepository interface {
	GetAll(ctx context.Context) ([]models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByUserID(ctx context.Context, userID string) (*models.Patient, error)
	GetDetails(ctx context.Context, id string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("last_name, first_name").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return r.first(ctx, r.db.WithContext(ctx).Preload("User"), "id = ?", id)
}

func (r *patientRepository) GetByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return r.first(ctx, r.db.WithContext(ctx), "user_id = ?", userID)
}

// GetDetails loads the patient with its appointments, records and prescriptions, newest first.
func (r *patientRepository) GetDetails(ctx context.Context, id string) (*models.Patient, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Appointments", func(db *gorm.DB) *gorm.DB {
			return db.Order("appointment_date DESC")
		}).
		Preload("Appointments.Doctor").
		Preload("MedicalRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("visit_date DESC")
		}).
		Preload("MedicalRecords.Doctor").
		Preload("Prescriptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("prescription_date DESC")
		}).
		Preload("Prescriptions.Doctor")
	return r.first(ctx, q, "id = ?", id)
}

// Update writes only the fields a patient is allowed to edit.
func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	err := r.db.WithContext(ctx).Model(&models.Patient{ID: patient.ID}).
		Select("first_name", "last_name", "phone", "address", "blood_group").
		Updates(map[string]interface{}{
			"first_name":  patient.FirstName,
			"last_name":   patient.LastName,
			"phone":       patient.Phone,
			"address":     patient.Address,
			"blood_group": patient.BloodGroup,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (r *patientRepository) first(ctx context.Context, q *gorm.DB, query string, args ...interface{}) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var patient models.Patient
	if err := q.WithContext(ctx).Where(query, args...).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}
