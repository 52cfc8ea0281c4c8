package repositories

import (
	"CarePortal/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Scope narrows a dashboard query to one patient or one doctor. The zero value means everything.
type Scope struct {
	PatientID string
	DoctorID  string
}

func (s Scope) apply(q *gorm.DB) *gorm.DB {
	if s.PatientID != "" {
		q = q.Where("patient_id = ?", s.PatientID)
	}
	if s.DoctorID != "" {
		q = q.Where("doctor_id = ?", s.DoctorID)
	}
	return q
}

// DashboardRepository holds the read-only aggregate queries behind the dashboards.
type DashboardRepository interface {
	CountPatients(ctx context.Context) (int64, error)
	CountDoctors(ctx context.Context) (int64, error)
	CountAppointments(ctx context.Context, scope Scope, statuses ...models.AppointmentStatus) (int64, error)
	CountMedicalRecords(ctx context.Context, scope Scope) (int64, error)
	CountPrescriptions(ctx context.Context, scope Scope) (int64, error)
	CountDistinctPatientsSeen(ctx context.Context, doctorID string) (int64, error)
	RecentAppointments(ctx context.Context, limit int) ([]models.Appointment, error)
	AppointmentsBetween(ctx context.Context, scope Scope, from, to time.Time) ([]models.Appointment, error)
	UpcomingAppointments(ctx context.Context, scope Scope, after time.Time, inclusive bool, limit int) ([]models.Appointment, error)
	PastAppointments(ctx context.Context, scope Scope, now time.Time, limit int) ([]models.Appointment, error)
	RecentMedicalRecords(ctx context.Context, scope Scope, limit int) ([]models.MedicalRecord, error)
	RecentPrescriptions(ctx context.Context, scope Scope, limit int) ([]models.Prescription, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountPatients(ctx context.Context) (int64, error) {
	return r.count(ctx, r.db.Model(&models.Patient{}), "patients")
}

func (r *dashboardRepository) CountDoctors(ctx context.Context) (int64, error) {
	return r.count(ctx, r.db.Model(&models.Doctor{}), "doctors")
}

func (r *dashboardRepository) CountAppointments(ctx context.Context, scope Scope, statuses ...models.AppointmentStatus) (int64, error) {
	q := scope.apply(r.db.Model(&models.Appointment{}))
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	return r.count(ctx, q, "appointments")
}

func (r *dashboardRepository) CountMedicalRecords(ctx context.Context, scope Scope) (int64, error) {
	return r.count(ctx, scope.apply(r.db.Model(&models.MedicalRecord{})), "medical records")
}

func (r *dashboardRepository) CountPrescriptions(ctx context.Context, scope Scope) (int64, error) {
	return r.count(ctx, scope.apply(r.db.Model(&models.Prescription{})), "prescriptions")
}

// CountDistinctPatientsSeen counts patients with at least one completed appointment with the doctor.
func (r *dashboardRepository) CountDistinctPatientsSeen(ctx context.Context, doctorID string) (int64, error) {
	q := r.db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = ?", doctorID, models.StatusCompleted).
		Distinct("patient_id")
	return r.count(ctx, q, "patients seen")
}

func (r *dashboardRepository) RecentAppointments(ctx context.Context, limit int) ([]models.Appointment, error) {
	return r.appointments(ctx, r.db.Order("appointment_date DESC").Limit(limit))
}

// AppointmentsBetween returns appointments in [from, to), earliest first.
func (r *dashboardRepository) AppointmentsBetween(ctx context.Context, scope Scope, from, to time.Time) ([]models.Appointment, error) {
	q := scope.apply(r.db).
		Where("appointment_date >= ? AND appointment_date < ?", from, to).
		Order("appointment_date")
	return r.appointments(ctx, q)
}

// UpcomingAppointments returns Scheduled appointments after the given instant, earliest first.
func (r *dashboardRepository) UpcomingAppointments(ctx context.Context, scope Scope, after time.Time, inclusive bool, limit int) ([]models.Appointment, error) {
	cmp := "appointment_date > ?"
	if inclusive {
		cmp = "appointment_date >= ?"
	}
	q := scope.apply(r.db).
		Where("status = ?", models.StatusScheduled).
		Where(cmp, after).
		Order("appointment_date").
		Limit(limit)
	return r.appointments(ctx, q)
}

// PastAppointments returns completed or already elapsed appointments, newest first.
func (r *dashboardRepository) PastAppointments(ctx context.Context, scope Scope, now time.Time, limit int) ([]models.Appointment, error) {
	q := scope.apply(r.db).
		Where("(status = ? OR appointment_date < ?)", models.StatusCompleted, now).
		Order("appointment_date DESC").
		Limit(limit)
	return r.appointments(ctx, q)
}

func (r *dashboardRepository) RecentMedicalRecords(ctx context.Context, scope Scope, limit int) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := scope.apply(r.db.WithContext(ctx)).
		Preload("Doctor").
		Order("visit_date DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent medical records: %w", err)
	}
	return records, nil
}

func (r *dashboardRepository) RecentPrescriptions(ctx context.Context, scope Scope, limit int) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := scope.apply(r.db.WithContext(ctx)).
		Preload("Doctor").
		Order("prescription_date DESC").
		Limit(limit).
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent prescriptions: %w", err)
	}
	return prescriptions, nil
}

func (r *dashboardRepository) count(ctx context.Context, q *gorm.DB, what string) (int64, error) {
	var n int64
	if err := q.WithContext(ctx).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return n, nil
}

func (r *dashboardRepository) appointments(ctx context.Context, q *gorm.DB) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := q.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
