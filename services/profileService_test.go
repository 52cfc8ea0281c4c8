package services

import (
	"CarePortal/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientService_UpdateOwnershipFromStoredRow(t *testing.T) {
	w := newWorld(t)
	svc := NewPatientService(w.patients, w.users)
	ctx := context.Background()

	a, patientA := w.patient("Ada")
	b, patientB := w.patient("Alan")
	admin := Actor{UserID: "admin", Role: models.RoleAdmin}

	edit := models.PatientUpdateRequest{FirstName: "Augusta", LastName: "King", Phone: "555-0100", BloodGroup: "AB+"}

	_, err := svc.Update(ctx, patientB, a.ID, edit)
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = svc.Update(ctx, admin, a.ID, edit)
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = svc.Update(ctx, patientA, models.NewID(), edit)
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.Update(ctx, patientA, a.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)

	got, err := svc.Details(ctx, patientA, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "AB+", got.BloodGroup)

	_, err = svc.Details(ctx, patientA, b.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = svc.Details(ctx, admin, b.ID)
	assert.NoError(t, err)

	bad := edit
	bad.BloodGroup = "Q"
	_, err = svc.Update(ctx, patientA, a.ID, bad)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestPatientService_AdminCreatesAccount(t *testing.T) {
	w := newWorld(t)
	svc := NewPatientService(w.patients, w.users)
	ctx := context.Background()
	admin := Actor{UserID: "admin", Role: models.RoleAdmin}

	_, patient := w.patient("Ada")
	_, err := svc.Create(ctx, patient, registerRequest("new@x.com"))
	assert.ErrorIs(t, err, ErrAccessDenied)

	created, err := svc.Create(ctx, admin, registerRequest("new@x.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.UserID)

	_, err = svc.Create(ctx, admin, registerRequest("NEW@x.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	list, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	_, err = svc.List(ctx, patient)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDoctorService(t *testing.T) {
	w := newWorld(t)
	svc := NewDoctorService(w.doctors, w.users)
	ctx := context.Background()
	admin := Actor{UserID: "admin", Role: models.RoleAdmin}

	req := models.DoctorCreateRequest{
		Email: "house@x.com", Password: "secret1", FirstName: "Gregory", LastName: "House",
		Specialization: "Diagnostics", ConsultationFee: 300,
	}
	_, err := svc.Create(ctx, Actor{UserID: "p", Role: models.RolePatient}, req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	created, err := svc.Create(ctx, admin, req)
	require.NoError(t, err)
	assert.Equal(t, "house@x.com", created.Email)

	_, err = svc.Create(ctx, admin, req)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	house := Actor{UserID: created.UserID, Role: models.RoleDoctor}
	me, err := svc.Me(ctx, house)
	require.NoError(t, err)
	assert.Equal(t, created.ID, me.ID)

	_, other := w.doctor("James")
	edit := models.DoctorUpdateRequest{FirstName: "Greg", LastName: "House", Specialization: "Nephrology"}
	_, err = svc.Update(ctx, other, created.ID, edit)
	assert.ErrorIs(t, err, ErrAccessDenied)

	updated, err := svc.Update(ctx, house, created.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "Greg", updated.FirstName)

	_, err = svc.Update(ctx, admin, created.ID, edit)
	assert.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.Details(ctx, admin, models.NewID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDoctorService_DetailsHidesOtherPatientsVisits(t *testing.T) {
	w := newWorld(t)
	svc := NewDoctorService(w.doctors, w.users)
	ctx := context.Background()

	d, doctor := w.doctor("Gregory")
	_, otherDoctor := w.doctor("James")
	_, patientX := w.patient("Xavier")
	y, _ := w.patient("Yvonne")
	w.appointment(y, d, clinicNow.Add(24*time.Hour), models.StatusScheduled)

	seen, err := svc.Details(ctx, patientX, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, seen.ID)
	assert.Empty(t, seen.Appointments)

	seen, err = svc.Details(ctx, otherDoctor, d.ID)
	require.NoError(t, err)
	assert.Empty(t, seen.Appointments)

	seen, err = svc.Details(ctx, Actor{UserID: "admin", Role: models.RoleAdmin}, d.ID)
	require.NoError(t, err)
	require.Len(t, seen.Appointments, 1)
	assert.Equal(t, "Yvonne", seen.Appointments[0].Patient.FirstName)

	seen, err = svc.Details(ctx, doctor, d.ID)
	require.NoError(t, err)
	assert.Len(t, seen.Appointments, 1)

	me, err := svc.Me(ctx, doctor)
	require.NoError(t, err)
	assert.Len(t, me.Appointments, 1)
}
