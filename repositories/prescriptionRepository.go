package repositories

import (
	"CarePortal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *models.Prescription) error
	GetByID(ctx context.Context, id string) (*models.Prescription, error)
	GetAll(ctx context.Context) ([]models.Prescription, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Prescription, error)
	Update(ctx context.Context, prescription *models.Prescription) error
	Delete(ctx context.Context, id string) (bool, error)
}

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	err := r.db.WithContext(ctx).Omit("Patient", "Doctor", "MedicalRecord").Create(prescription).Error
	if err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescription models.Prescription
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("MedicalRecord").
		First(&prescription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &prescription, nil
}

func (r *prescriptionRepository) GetAll(ctx context.Context) ([]models.Prescription, error) {
	return r.list(ctx, r.db)
}

func (r *prescriptionRepository) ListByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return r.list(ctx, r.db.Where("doctor_id = ?", doctorID))
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return r.list(ctx, r.db.Where("patient_id = ?", patientID))
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *models.Prescription) error {
	err := r.db.WithContext(ctx).Model(&models.Prescription{ID: prescription.ID}).
		Select("medicine_name", "dosage", "duration", "instructions").
		Updates(map[string]interface{}{
			"medicine_name": prescription.MedicineName,
			"dosage":        prescription.Dosage,
			"duration":      prescription.Duration,
			"instructions":  prescription.Instructions,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update prescription: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Prescription{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete prescription: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *prescriptionRepository) list(ctx context.Context, q *gorm.DB) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := q.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Order("prescription_date DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return prescriptions, nil
}
