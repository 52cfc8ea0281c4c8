package services

import (
	"CarePortal/database/databasetest"
	"CarePortal/models"
	"CarePortal/repositories"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// world wires real repositories over an in-memory database.
type world struct {
	t            *testing.T
	db           *gorm.DB
	users        repositories.UserRepository
	patients     repositories.PatientRepository
	doctors      repositories.DoctorRepository
	appointments repositories.AppointmentRepository
	records      repositories.MedicalRecordRepository
	rx           repositories.PrescriptionRepository
	dashboard    repositories.DashboardRepository
	n            int
}

func newWorld(t *testing.T) *world {
	db := databasetest.Open(t)
	return &world{
		t:            t,
		db:           db,
		users:        repositories.NewUserRepository(db),
		patients:     repositories.NewPatientRepository(db),
		doctors:      repositories.NewDoctorRepository(db),
		appointments: repositories.NewAppointmentRepository(db),
		records:      repositories.NewMedicalRecordRepository(db),
		rx:           repositories.NewPrescriptionRepository(db),
		dashboard:    repositories.NewDashboardRepository(db),
	}
}

func (w *world) nextEmail(prefix string) string {
	w.n++
	return prefix + string(rune('a'+w.n)) + "@example.com"
}

func (w *world) patient(first string) (*models.Patient, Actor) {
	w.t.Helper()
	user := models.User{Email: w.nextEmail("patient"), Password: "hash", Role: models.RolePatient}
	require.NoError(w.t, w.db.Create(&user).Error)
	p := &models.Patient{UserID: user.ID, FirstName: first, LastName: "Test"}
	require.NoError(w.t, w.db.Create(p).Error)
	return p, Actor{UserID: user.ID, Role: models.RolePatient}
}

func (w *world) doctor(first string) (*models.Doctor, Actor) {
	w.t.Helper()
	user := models.User{Email: w.nextEmail("doctor"), Password: "hash", Role: models.RoleDoctor}
	require.NoError(w.t, w.db.Create(&user).Error)
	d := &models.Doctor{UserID: user.ID, FirstName: first, LastName: "Test", Specialization: "General Practice"}
	require.NoError(w.t, w.db.Create(d).Error)
	return d, Actor{UserID: user.ID, Role: models.RoleDoctor}
}

func (w *world) appointment(p *models.Patient, d *models.Doctor, at time.Time, status models.AppointmentStatus) *models.Appointment {
	w.t.Helper()
	a := &models.Appointment{PatientID: p.ID, DoctorID: d.ID, AppointmentDate: at, Status: status, Reason: "checkup"}
	require.NoError(w.t, w.db.Create(a).Error)
	return a
}

func (w *world) status(id string) models.AppointmentStatus {
	w.t.Helper()
	var statuses []models.AppointmentStatus
	require.NoError(w.t, w.db.Model(&models.Appointment{}).Where("id = ?", id).Pluck("status", &statuses).Error)
	require.Len(w.t, statuses, 1)
	return statuses[0]
}

func (w *world) recordService(now time.Time) *MedicalRecordService {
	s := NewMedicalRecordService(w.records, w.appointments, w.patients, w.doctors)
	s.now = func() time.Time { return now }
	return s
}

func (w *world) prescriptionService(now time.Time) *PrescriptionService {
	s := NewPrescriptionService(w.rx, w.records, w.patients, w.doctors)
	s.now = func() time.Time { return now }
	return s
}
