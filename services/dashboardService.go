package services

import (
	"CarePortal/models"
	"CarePortal/repositories"
	"context"
	"time"
)

const (
	adminRecentLimit    = 5
	doctorUpcomingLimit = 10
	patientListLimit    = 5
)

// Dashboard is the payload of one role's dashboard.
type Dashboard interface {
	Role() models.Role
}

// DashboardView builds the dashboard for one role.
type DashboardView interface {
	Build(ctx context.Context, actor Actor) (Dashboard, error)
}

type AdminDashboard struct {
	TotalPatients         int64                `json:"total_patients"`
	TotalDoctors          int64                `json:"total_doctors"`
	TotalAppointments     int64                `json:"total_appointments"`
	PendingAppointments   int64                `json:"pending_appointments"`
	CompletedAppointments int64                `json:"completed_appointments"`
	TotalMedicalRecords   int64                `json:"total_medical_records"`
	RecentAppointments    []models.Appointment `json:"recent_appointments"`
}

func (AdminDashboard) Role() models.Role { return models.RoleAdmin }

type DoctorDashboard struct {
	Doctor                *models.Doctor       `json:"doctor"`
	DoctorName            string               `json:"doctor_name"`
	TodayAppointments     []models.Appointment `json:"today_appointments"`
	UpcomingAppointments  []models.Appointment `json:"upcoming_appointments"`
	TotalPatientsSeen     int64                `json:"total_patients_seen"`
	TotalAppointments     int64                `json:"total_appointments"`
	CompletedAppointments int64                `json:"completed_appointments"`
	PendingAppointments   int64                `json:"pending_appointments"`
}

func (DoctorDashboard) Role() models.Role { return models.RoleDoctor }

type PatientDashboard struct {
	Patient              *models.Patient        `json:"patient"`
	PatientName          string                 `json:"patient_name"`
	UpcomingAppointments []models.Appointment   `json:"upcoming_appointments"`
	PastAppointments     []models.Appointment   `json:"past_appointments"`
	MedicalRecords       []models.MedicalRecord `json:"medical_records"`
	Prescriptions        []models.Prescription  `json:"prescriptions"`
	TotalAppointments    int64                  `json:"total_appointments"`
	TotalMedicalRecords  int64                  `json:"total_medical_records"`
	TotalPrescriptions   int64                  `json:"total_prescriptions"`
}

func (PatientDashboard) Role() models.Role { return models.RolePatient }

type AdminView struct {
	repo repositories.DashboardRepository
}

func (v AdminView) Build(ctx context.Context, _ Actor) (Dashboard, error) {
	var (
		d   AdminDashboard
		err error
	)
	if d.TotalPatients, err = v.repo.CountPatients(ctx); err != nil {
		return nil, err
	}
	if d.TotalDoctors, err = v.repo.CountDoctors(ctx); err != nil {
		return nil, err
	}
	if d.TotalAppointments, err = v.repo.CountAppointments(ctx, repositories.Scope{}); err != nil {
		return nil, err
	}
	if d.PendingAppointments, err = v.repo.CountAppointments(ctx, repositories.Scope{}, models.StatusScheduled); err != nil {
		return nil, err
	}
	if d.CompletedAppointments, err = v.repo.CountAppointments(ctx, repositories.Scope{}, models.StatusCompleted); err != nil {
		return nil, err
	}
	if d.TotalMedicalRecords, err = v.repo.CountMedicalRecords(ctx, repositories.Scope{}); err != nil {
		return nil, err
	}
	if d.RecentAppointments, err = v.repo.RecentAppointments(ctx, adminRecentLimit); err != nil {
		return nil, err
	}
	return d, nil
}

type DoctorView struct {
	repo    repositories.DashboardRepository
	doctors repositories.DoctorRepository
	now     func() time.Time
}

func (v DoctorView) Build(ctx context.Context, actor Actor) (Dashboard, error) {
	doctor, err := callerDoctor(ctx, v.doctors, actor)
	if err != nil {
		return nil, err
	}

	now := v.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	scope := repositories.Scope{DoctorID: doctor.ID}

	d := DoctorDashboard{Doctor: doctor, DoctorName: doctor.DisplayName()}
	if d.TodayAppointments, err = v.repo.AppointmentsBetween(ctx, scope, dayStart, dayStart.AddDate(0, 0, 1)); err != nil {
		return nil, err
	}
	if d.UpcomingAppointments, err = v.repo.UpcomingAppointments(ctx, scope, now, false, doctorUpcomingLimit); err != nil {
		return nil, err
	}
	if d.TotalPatientsSeen, err = v.repo.CountDistinctPatientsSeen(ctx, doctor.ID); err != nil {
		return nil, err
	}
	if d.TotalAppointments, err = v.repo.CountAppointments(ctx, scope); err != nil {
		return nil, err
	}
	if d.CompletedAppointments, err = v.repo.CountAppointments(ctx, scope, models.StatusCompleted); err != nil {
		return nil, err
	}
	if d.PendingAppointments, err = v.repo.CountAppointments(ctx, scope, models.StatusScheduled); err != nil {
		return nil, err
	}
	return d, nil
}

type PatientView struct {
	repo     repositories.DashboardRepository
	patients repositories.PatientRepository
	now      func() time.Time
}

func (v PatientView) Build(ctx context.Context, actor Actor) (Dashboard, error) {
	patient, err := callerPatient(ctx, v.patients, actor)
	if err != nil {
		return nil, err
	}

	now := v.now()
	scope := repositories.Scope{PatientID: patient.ID}

	d := PatientDashboard{Patient: patient, PatientName: patient.FullName()}
	if d.UpcomingAppointments, err = v.repo.UpcomingAppointments(ctx, scope, now, true, patientListLimit); err != nil {
		return nil, err
	}
	if d.PastAppointments, err = v.repo.PastAppointments(ctx, scope, now, patientListLimit); err != nil {
		return nil, err
	}
	if d.MedicalRecords, err = v.repo.RecentMedicalRecords(ctx, scope, patientListLimit); err != nil {
		return nil, err
	}
	if d.Prescriptions, err = v.repo.RecentPrescriptions(ctx, scope, patientListLimit); err != nil {
		return nil, err
	}
	if d.TotalAppointments, err = v.repo.CountAppointments(ctx, scope); err != nil {
		return nil, err
	}
	if d.TotalMedicalRecords, err = v.repo.CountMedicalRecords(ctx, scope); err != nil {
		return nil, err
	}
	if d.TotalPrescriptions, err = v.repo.CountPrescriptions(ctx, scope); err != nil {
		return nil, err
	}
	return d, nil
}

// DashboardService picks the view for the caller's role.
type DashboardService struct {
	views map[models.Role]DashboardView
}

func NewDashboardService(repo repositories.DashboardRepository, doctors repositories.DoctorRepository, patients repositories.PatientRepository) *DashboardService {
	return newDashboardService(repo, doctors, patients, time.Now)
}

func newDashboardService(repo repositories.DashboardRepository, doctors repositories.DoctorRepository, patients repositories.PatientRepository, now func() time.Time) *DashboardService {
	return &DashboardService{views: map[models.Role]DashboardView{
		models.RoleAdmin:   AdminView{repo: repo},
		models.RoleDoctor:  DoctorView{repo: repo, doctors: doctors, now: now},
		models.RolePatient: PatientView{repo: repo, patients: patients, now: now},
	}}
}

// Build dispatches once on the actor's role.
func (s *DashboardService) Build(ctx context.Context, actor Actor) (Dashboard, error) {
	view, ok := s.views[actor.Role]
	if !ok {
		return nil, ErrAccessDenied
	}
	return view.Build(ctx, actor)
}
