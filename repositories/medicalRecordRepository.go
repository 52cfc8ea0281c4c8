package repositories

import (
	"CarePortal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	CreateForAppointment(ctx context.Context, record *models.MedicalRecord) error
	GetByID(ctx context.Context, id string) (*models.MedicalRecord, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (*models.MedicalRecord, error)
	GetAll(ctx context.Context) ([]models.MedicalRecord, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
	Update(ctx context.Context, record *models.MedicalRecord) error
}

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

// CreateForAppointment closes the appointment and inserts its record in one transaction.
// The appointment must still be Scheduled, otherwise ErrNotScheduled is returned and nothing is written.
func (r *medicalRecordRepository) CreateForAppointment(ctx context.Context, record *models.MedicalRecord) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND status = ?", record.AppointmentID, models.StatusScheduled).
			Update("status", models.StatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotScheduled
		}
		return tx.Omit("Patient", "Doctor", "Appointment", "Prescriptions").Create(record).Error
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotScheduled):
		return err
	case isDuplicateKey(err):
		return fmt.Errorf("failed to create medical record: %w", ErrDuplicateKey)
	default:
		return fmt.Errorf("failed to create medical record: %w", err)
	}
}

func (r *medicalRecordRepository) GetByID(ctx context.Context, id string) (*models.MedicalRecord, error) {
	q := r.db.
		Preload("Patient").
		Preload("Doctor").
		Preload("Appointment").
		Preload("Prescriptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("prescription_date DESC")
		})
	return r.first(ctx, q, "id = ?", id)
}

func (r *medicalRecordRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (*models.MedicalRecord, error) {
	return r.first(ctx, r.db, "appointment_id = ?", appointmentID)
}

func (r *medicalRecordRepository) GetAll(ctx context.Context) ([]models.MedicalRecord, error) {
	return r.list(ctx, r.db)
}

func (r *medicalRecordRepository) ListByDoctor(ctx context.Context, doctorID string) ([]models.MedicalRecord, error) {
	return r.list(ctx, r.db.Where("doctor_id = ?", doctorID))
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	return r.list(ctx, r.db.Where("patient_id = ?", patientID))
}

// Update writes the clinical fields only. Ownership columns never change after creation.
func (r *medicalRecordRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	err := r.db.WithContext(ctx).Model(&models.MedicalRecord{ID: record.ID}).
		Select("symptoms", "diagnosis", "treatment", "notes").
		Updates(map[string]interface{}{
			"symptoms":  record.Symptoms,
			"diagnosis": record.Diagnosis,
			"treatment": record.Treatment,
			"notes":     record.Notes,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update medical record: %w", err)
	}
	return nil
}

func (r *medicalRecordRepository) first(ctx context.Context, q *gorm.DB, query string, args ...interface{}) (*models.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.MedicalRecord
	if err := q.WithContext(ctx).Where(query, args...).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medical record: %w", err)
	}
	return &record, nil
}

func (r *medicalRecordRepository) list(ctx context.Context, q *gorm.DB) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := q.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Order("visit_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}
