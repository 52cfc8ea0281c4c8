package repositories

import (
	"CarePortal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListPendingForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment, expected models.AppointmentStatus) error
	TransitionStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error
	Delete(ctx context.Context, id string) (bool, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Omit("Patient", "Doctor", "MedicalRecord").Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Patient.User").
		Preload("Doctor").
		Preload("MedicalRecord").
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return r.list(ctx, r.db, "appointment_date DESC")
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(ctx, r.db.Where("patient_id = ?", patientID), "appointment_date DESC")
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.list(ctx, r.db.Where("doctor_id = ?", doctorID), "appointment_date")
}

// ListPendingForDoctor returns the doctor's scheduled appointments that have no medical record yet.
func (r *appointmentRepository) ListPendingForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	q := r.db.
		Where("doctor_id = ? AND status = ?", doctorID, models.StatusScheduled).
		Where("NOT EXISTS (SELECT 1 FROM medical_records mr WHERE mr.appointment_id = appointments.id)")
	return r.list(ctx, q, "appointment_date")
}

// Update writes the editable fields only while the stored status is still expected.
// It returns ErrStatusChanged when the row moved on in the meantime.
func (r *appointmentRepository) Update(ctx context.Context, appointment *models.Appointment, expected models.AppointmentStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Appointment{ID: appointment.ID}).
		Where("status = ?", expected).
		Select("patient_id", "doctor_id", "appointment_date", "status", "reason", "notes").
		Updates(map[string]interface{}{
			"patient_id":       appointment.PatientID,
			"doctor_id":        appointment.DoctorID,
			"appointment_date": appointment.AppointmentDate,
			"status":           appointment.Status,
			"reason":           appointment.Reason,
			"notes":            appointment.Notes,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

// TransitionStatus moves the appointment from one status to another only if it is
// still in the expected status. It returns ErrNotScheduled when nothing matched.
func (r *appointmentRepository) TransitionStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return fmt.Errorf("failed to update appointment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotScheduled
	}
	return nil
}

// Delete removes the appointment. Its medical record and prescriptions go with it.
func (r *appointmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete appointment: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *appointmentRepository) list(ctx context.Context, q *gorm.DB, order string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := q.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Order(order).
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
