package services

import (
	"CarePortal/models"
	"CarePortal/repositories"
	"CarePortal/utils"
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

type MedicalRecordService struct {
	records      repositories.MedicalRecordRepository
	appointments repositories.AppointmentRepository
	patients     repositories.PatientRepository
	doctors      repositories.DoctorRepository
	now          func() time.Time
}

func NewMedicalRecordService(
	records repositories.MedicalRecordRepository,
	appointments repositories.AppointmentRepository,
	patients repositories.PatientRepository,
	doctors repositories.DoctorRepository,
) *MedicalRecordService {
	return &MedicalRecordService{
		records:      records,
		appointments: appointments,
		patients:     patients,
		doctors:      doctors,
		now:          time.Now,
	}
}

// List returns all records for admins and the doctor's own records for doctors.
func (s *MedicalRecordService) List(ctx context.Context, actor Actor) ([]models.MedicalRecord, error) {
	switch {
	case actor.IsAdmin():
		return s.records.GetAll(ctx)
	case actor.IsDoctor():
		doctor, err := callerDoctor(ctx, s.doctors, actor)
		if err != nil {
			return nil, err
		}
		return s.records.ListByDoctor(ctx, doctor.ID)
	}
	return nil, ErrAccessDenied
}

// Mine returns the calling patient's records.
func (s *MedicalRecordService) Mine(ctx context.Context, actor Actor) ([]models.MedicalRecord, error) {
	patient, err := callerPatient(ctx, s.patients, actor)
	if err != nil {
		return nil, err
	}
	return s.records.ListByPatient(ctx, patient.ID)
}

// Pending lists the doctor's scheduled appointments that still need a record.
func (s *MedicalRecordService) Pending(ctx context.Context, actor Actor) ([]models.Appointment, error) {
	doctor, err := callerDoctor(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}
	return s.appointments.ListPendingForDoctor(ctx, doctor.ID)
}

func (s *MedicalRecordService) Get(ctx context.Context, actor Actor, id string) (*models.MedicalRecord, error) {
	record, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewMedicalRecord(actor, record) {
		return nil, ErrAccessDenied
	}
	return record, nil
}

// Create writes the record for one of the doctor's scheduled appointments and completes it.
func (s *MedicalRecordService) Create(ctx context.Context, actor Actor, req models.MedicalRecordRequest) (*models.MedicalRecord, error) {
	doctor, err := callerDoctor(ctx, s.doctors, actor)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}
	if err := asValidationError(utils.ValidateMedicalRecord(&req)); err != nil {
		return nil, err
	}

	appt, err := s.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	if appt.DoctorID != doctor.ID {
		return nil, ErrAccessDenied
	}
	if appt.MedicalRecord != nil {
		return nil, ErrDuplicateRecord
	}
	if !appt.IsScheduled() {
		return nil, ErrInvalidTransition
	}

	record := &models.MedicalRecord{
		PatientID:     appt.PatientID,
		DoctorID:      doctor.ID,
		AppointmentID: appt.ID,
		VisitDate:     s.now(),
		Symptoms:      req.Symptoms,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Notes:         req.Notes,
	}
	if err := s.records.CreateForAppointment(ctx, record); err != nil {
		return nil, s.explainCreateFailure(ctx, appt.ID, err)
	}
	log.Info().Str("medical_record_id", record.ID).Str("appointment_id", appt.ID).Msg("medical record created, appointment completed")
	return record, nil
}

// explainCreateFailure maps a lost race on the appointment to the matching error kind.
func (s *MedicalRecordService) explainCreateFailure(ctx context.Context, appointmentID string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		return ErrDuplicateRecord
	case errors.Is(err, repositories.ErrNotScheduled):
		existing, lookupErr := s.records.GetByAppointmentID(ctx, appointmentID)
		if lookupErr != nil {
			return lookupErr
		}
		if existing != nil {
			return ErrDuplicateRecord
		}
		return ErrInvalidTransition
	}
	return err
}

// Update edits the clinical fields. Only the doctor who wrote the record may do so.
func (s *MedicalRecordService) Update(ctx context.Context, actor Actor, id string, req models.MedicalRecordUpdateRequest) (*models.MedicalRecord, error) {
	record, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsDoctor() || !ownsDoctor(actor, record.Doctor) {
		return nil, ErrAccessDenied
	}
	if err := asValidationError(utils.ValidateMedicalRecordUpdate(&req)); err != nil {
		return nil, err
	}

	record.Symptoms = req.Symptoms
	record.Diagnosis = req.Diagnosis
	record.Treatment = req.Treatment
	record.Notes = req.Notes
	if err := s.records.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *MedicalRecordService) load(ctx context.Context, id string) (*models.MedicalRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}
