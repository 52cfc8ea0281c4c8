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

type PrescriptionService struct {
	prescriptions repositories.PrescriptionRepository
	records       repositories.MedicalRecordRepository
	patients      repositories.PatientRepository
	doctors       repositories.DoctorRepository
	now           func() time.Time
}

func NewPrescriptionService(
	prescriptions repositories.PrescriptionRepository,
	records repositories.MedicalRecordRepository,
	patients repositories.PatientRepository,
	doctors repositories.DoctorRepository,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptions: prescriptions,
		records:       records,
		patients:      patients,
		doctors:       doctors,
		now:           time.Now,
	}
}

func (s *PrescriptionService) List(ctx context.Context, actor Actor) ([]models.Prescription, error) {
	switch {
	case actor.IsAdmin():
		return s.prescriptions.GetAll(ctx)
	case actor.IsDoctor():
		doctor, err := callerDoctor(ctx, s.doctors, actor)
		if err != nil {
			return nil, err
		}
		return s.prescriptions.ListByDoctor(ctx, doctor.ID)
	}
	return nil, ErrAccessDenied
}

func (s *PrescriptionService) Mine(ctx context.Context, actor Actor) ([]models.Prescription, error) {
	patient, err := callerPatient(ctx, s.patients, actor)
	if err != nil {
		return nil, err
	}
	return s.prescriptions.ListByPatient(ctx, patient.ID)
}

// Prescribable lists the records the calling doctor can attach prescriptions to.
func (s *PrescriptionService) Prescribable(ctx context.Context, actor Actor) ([]models.MedicalRecord, error) {
	doctor, err := callerDoctor(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}
	return s.records.ListByDoctor(ctx, doctor.ID)
}

// Get serves both the details and the print view.
func (s *PrescriptionService) Get(ctx context.Context, actor Actor, id string) (*models.Prescription, error) {
	rx, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewPrescription(actor, rx) {
		return nil, ErrAccessDenied
	}
	return rx, nil
}

// Create attaches a prescription to one of the doctor's records. Patient and doctor are copied from the record.
func (s *PrescriptionService) Create(ctx context.Context, actor Actor, req models.PrescriptionRequest) (*models.Prescription, error) {
	doctor, err := callerDoctor(ctx, s.doctors, actor)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}
	if err := asValidationError(utils.ValidatePrescription(&req)); err != nil {
		return nil, err
	}

	record, err := s.records.GetByID(ctx, req.MedicalRecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	if record.DoctorID != doctor.ID {
		return nil, ErrAccessDenied
	}

	rx := &models.Prescription{
		MedicalRecordID:  record.ID,
		PatientID:        record.PatientID,
		DoctorID:         record.DoctorID,
		MedicineName:     req.MedicineName,
		Dosage:           req.Dosage,
		Duration:         req.Duration,
		Instructions:     req.Instructions,
		PrescriptionDate: s.now(),
	}
	if err := s.prescriptions.Create(ctx, rx); err != nil {
		return nil, err
	}
	log.Info().Str("prescription_id", rx.ID).Str("medical_record_id", record.ID).Msg("prescription created")
	return rx, nil
}

func (s *PrescriptionService) Update(ctx context.Context, actor Actor, id string, req models.PrescriptionUpdateRequest) (*models.Prescription, error) {
	rx, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := asValidationError(utils.ValidatePrescriptionUpdate(&req)); err != nil {
		return nil, err
	}

	rx.MedicineName = req.MedicineName
	rx.Dosage = req.Dosage
	rx.Duration = req.Duration
	rx.Instructions = req.Instructions
	if err := s.prescriptions.Update(ctx, rx); err != nil {
		return nil, err
	}
	return rx, nil
}

func (s *PrescriptionService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.loadOwned(ctx, actor, id); err != nil {
		return err
	}
	deleted, err := s.prescriptions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// loadOwned returns the prescription if the actor is the doctor who wrote it.
func (s *PrescriptionService) loadOwned(ctx context.Context, actor Actor, id string) (*models.Prescription, error) {
	rx, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsDoctor() || !ownsDoctor(actor, rx.Doctor) {
		return nil, ErrAccessDenied
	}
	return rx, nil
}

func (s *PrescriptionService) load(ctx context.Context, id string) (*models.Prescription, error) {
	rx, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rx == nil {
		return nil, ErrNotFound
	}
	return rx, nil
}
