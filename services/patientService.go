package services

import (
	"CarePortal/models"
	"CarePortal/repositories"
	"CarePortal/utils"
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

type PatientService struct {
	patients repositories.PatientRepository
	accounts accountCreator
}

func NewPatientService(patients repositories.PatientRepository, users repositories.UserRepository) *PatientService {
	return &PatientService{patients: patients, accounts: accountCreator{users: users}}
}

// List returns every patient. Admin only.
func (s *PatientService) List(ctx context.Context, actor Actor) ([]models.Patient, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}
	return s.patients.GetAll(ctx)
}

// Create opens a patient account on behalf of an admin.
func (s *PatientService) Create(ctx context.Context, actor Actor, req models.RegisterRequest) (*models.Patient, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}
	user, patient, err := s.accounts.createPatient(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info().Str("email", user.Email).Str("by", actor.UserID).Msg("patient account created")
	return patient, nil
}

// Details returns the profile with appointments, records and prescriptions.
func (s *PatientService) Details(ctx context.Context, actor Actor, id string) (*models.Patient, error) {
	patient, err := s.patients.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	if !canViewPatient(actor, patient) {
		return nil, ErrAccessDenied
	}
	return patient, nil
}

// Update lets a patient edit their own profile. Ownership is checked on the stored row.
func (s *PatientService) Update(ctx context.Context, actor Actor, id string, req models.PatientUpdateRequest) (*models.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	if !canEditPatient(actor, patient) {
		return nil, ErrAccessDenied
	}
	if err := asValidationError(utils.ValidatePatientUpdate(&req)); err != nil {
		return nil, err
	}

	patient.FirstName = strings.TrimSpace(req.FirstName)
	patient.LastName = strings.TrimSpace(req.LastName)
	patient.Phone = req.Phone
	patient.Address = req.Address
	patient.BloodGroup = req.BloodGroup
	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}
