package repositories

import (
	"CarePortal/database/databasetest"
	"CarePortal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var base = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

type fixtures struct {
	t  *testing.T
	db *gorm.DB
	n  int
}

func newFixtures(t *testing.T) *fixtures {
	return &fixtures{t: t, db: databasetest.Open(t)}
}

func (f *fixtures) email(prefix string) string {
	f.n++
	return prefix + string(rune('a'+f.n)) + "@example.com"
}

func (f *fixtures) patient(first, last string) *models.Patient {
	f.t.Helper()
	user := models.User{Email: f.email("patient"), Password: "hash", Role: models.RolePatient}
	require.NoError(f.t, f.db.Create(&user).Error)
	p := &models.Patient{UserID: user.ID, FirstName: first, LastName: last, DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(f.t, f.db.Create(p).Error)
	return p
}

func (f *fixtures) doctor(first, last string) *models.Doctor {
	f.t.Helper()
	user := models.User{Email: f.email("doctor"), Password: "hash", Role: models.RoleDoctor}
	require.NoError(f.t, f.db.Create(&user).Error)
	d := &models.Doctor{UserID: user.ID, FirstName: first, LastName: last, Specialization: "General Practice"}
	require.NoError(f.t, f.db.Create(d).Error)
	return d
}

func (f *fixtures) appointment(p *models.Patient, d *models.Doctor, at time.Time, status models.AppointmentStatus) *models.Appointment {
	f.t.Helper()
	a := &models.Appointment{PatientID: p.ID, DoctorID: d.ID, AppointmentDate: at, Status: status, Reason: "checkup"}
	require.NoError(f.t, f.db.Create(a).Error)
	return a
}

func (f *fixtures) record(a *models.Appointment, visit time.Time) *models.MedicalRecord {
	f.t.Helper()
	rec := &models.MedicalRecord{PatientID: a.PatientID, DoctorID: a.DoctorID, AppointmentID: a.ID, VisitDate: visit, Diagnosis: "flu"}
	require.NoError(f.t, f.db.Create(rec).Error)
	return rec
}

func (f *fixtures) prescription(rec *models.MedicalRecord, medicine string, at time.Time) *models.Prescription {
	f.t.Helper()
	p := &models.Prescription{MedicalRecordID: rec.ID, PatientID: rec.PatientID, DoctorID: rec.DoctorID, MedicineName: medicine, PrescriptionDate: at}
	require.NoError(f.t, f.db.Create(p).Error)
	return p
}
