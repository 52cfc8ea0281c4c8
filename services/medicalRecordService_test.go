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

var clinicNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func TestMedicalRecordService_CreateCompletesAppointment(t *testing.T) {
	w := newWorld(t)
	svc := w.recordService(clinicNow)
	ctx := context.Background()

	p, _ := w.patient("Ada")
	d, doctor := w.doctor("Gregory")
	appt := w.appointment(p, d, clinicNow, models.StatusScheduled)

	req := models.MedicalRecordRequest{AppointmentID: appt.ID, Symptoms: "cough", Diagnosis: "flu"}
	record, err := svc.Create(ctx, doctor, req)
	require.NoError(t, err)
	assert.Equal(t, p.ID, record.PatientID)
	assert.Equal(t, d.ID, record.DoctorID)
	assert.True(t, clinicNow.Equal(record.VisitDate))
	assert.Equal(t, models.StatusCompleted, w.status(appt.ID))

	_, err = svc.Create(ctx, doctor, req)
	assert.ErrorIs(t, err, ErrDuplicateRecord)

	var count int64
	require.NoError(t, w.db.Model(&models.MedicalRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMedicalRecordService_CreateRules(t *testing.T) {
	w := newWorld(t)
	svc := w.recordService(clinicNow)
	ctx := context.Background()

	p, patient := w.patient("Ada")
	d, doctor := w.doctor("Gregory")
	_, otherDoctor := w.doctor("James")

	scheduled := w.appointment(p, d, clinicNow, models.StatusScheduled)
	cancelled := w.appointment(p, d, clinicNow, models.StatusCancelled)

	_, err := svc.Create(ctx, otherDoctor, models.MedicalRecordRequest{AppointmentID: scheduled.ID, Diagnosis: "flu"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, models.StatusScheduled, w.status(scheduled.ID))

	_, err = svc.Create(ctx, patient, models.MedicalRecordRequest{AppointmentID: scheduled.ID, Diagnosis: "flu"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Create(ctx, doctor, models.MedicalRecordRequest{AppointmentID: cancelled.ID, Diagnosis: "flu"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Create(ctx, doctor, models.MedicalRecordRequest{AppointmentID: models.NewID(), Diagnosis: "flu"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, doctor, models.MedicalRecordRequest{AppointmentID: scheduled.ID})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "diagnosis")
}

func TestMedicalRecordService_ListsAndAccess(t *testing.T) {
	w := newWorld(t)
	svc := w.recordService(clinicNow)
	ctx := context.Background()

	p1, patient1 := w.patient("Ada")
	p2, patient2 := w.patient("Alan")
	d1, doctor1 := w.doctor("Gregory")
	d2, doctor2 := w.doctor("James")

	r1, err := svc.Create(ctx, doctor1, models.MedicalRecordRequest{AppointmentID: w.appointment(p1, d1, clinicNow, models.StatusScheduled).ID, Diagnosis: "flu"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, doctor2, models.MedicalRecordRequest{AppointmentID: w.appointment(p2, d2, clinicNow, models.StatusScheduled).ID, Diagnosis: "cold"})
	require.NoError(t, err)
	pending := w.appointment(p1, d1, clinicNow.Add(24*time.Hour), models.StatusScheduled)

	all, err := svc.List(ctx, Actor{UserID: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(ctx, doctor1)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, r1.ID, own[0].ID)

	_, err = svc.List(ctx, patient1)
	assert.ErrorIs(t, err, ErrAccessDenied)

	mine, err := svc.Mine(ctx, patient2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "cold", mine[0].Diagnosis)

	open, err := svc.Pending(ctx, doctor1)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, pending.ID, open[0].ID)

	_, err = svc.Get(ctx, patient2, r1.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = svc.Get(ctx, doctor2, r1.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	got, err := svc.Get(ctx, patient1, r1.ID)
	require.NoError(t, err)
	assert.Equal(t, "flu", got.Diagnosis)
}

func TestMedicalRecordService_Update(t *testing.T) {
	w := newWorld(t)
	svc := w.recordService(clinicNow)
	ctx := context.Background()

	p, patient := w.patient("Ada")
	d, doctor := w.doctor("Gregory")
	_, otherDoctor := w.doctor("James")

	record, err := svc.Create(ctx, doctor, models.MedicalRecordRequest{AppointmentID: w.appointment(p, d, clinicNow, models.StatusScheduled).ID, Diagnosis: "flu"})
	require.NoError(t, err)

	edit := models.MedicalRecordUpdateRequest{Symptoms: "fever", Diagnosis: "influenza", Treatment: "rest"}
	_, err = svc.Update(ctx, otherDoctor, record.ID, edit)
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = svc.Update(ctx, patient, record.ID, edit)
	assert.ErrorIs(t, err, ErrAccessDenied)

	updated, err := svc.Update(ctx, doctor, record.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "influenza", updated.Diagnosis)

	got, err := svc.Get(ctx, doctor, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "rest", got.Treatment)
	assert.Equal(t, p.ID, got.PatientID)
}
