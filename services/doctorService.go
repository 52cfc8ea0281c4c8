package services

import (
	"CarePortal/models"
	"CarePortal/repositories"
	"CarePortal/utils"
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

type DoctorService struct {
	doctors  repositories.DoctorRepository
	accounts accountCreator
}

func NewDoctorService(doctors repositories.DoctorRepository, users repositories.UserRepository) *DoctorService {
	return &DoctorService{doctors: doctors, accounts: accountCreator{users: users}}
}

// List is open to every signed-in user so patients can pick a doctor.
func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.doctors.GetAll(ctx)
}

// Details returns the doctor's profile. Only admins and the doctor themselves also get the
// appointment list, since it carries other patients' visits.
func (s *DoctorService) Details(ctx context.Context, actor Actor, id string) (*models.Doctor, error) {
	doctor, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrNotFound
	}
	if !actor.IsAdmin() && !ownsDoctor(actor, doctor) {
		return doctor, nil
	}

	detailed, err := s.doctors.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if detailed == nil {
		return nil, ErrNotFound
	}
	return detailed, nil
}

// Me returns the calling doctor's own profile.
func (s *DoctorService) Me(ctx context.Context, actor Actor) (*models.Doctor, error) {
	doctor, err := callerDoctor(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}
	return s.Details(ctx, actor, doctor.ID)
}

// Create opens a doctor account. Admin only.
func (s *DoctorService) Create(ctx context.Context, actor Actor, req models.DoctorCreateRequest) (*models.Doctor, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}
	doctor, err := s.accounts.createDoctor(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info().Str("email", doctor.Email).Str("by", actor.UserID).Msg("doctor account created")
	return doctor, nil
}

// Update is allowed to admins and to the doctor on their own profile.
func (s *DoctorService) Update(ctx context.Context, actor Actor, id string, req models.DoctorUpdateRequest) (*models.Doctor, error) {
	doctor, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrNotFound
	}
	if !canEditDoctor(actor, doctor) {
		return nil, ErrAccessDenied
	}
	if err := asValidationError(utils.ValidateDoctorUpdate(&req)); err != nil {
		return nil, err
	}

	doctor.FirstName = strings.TrimSpace(req.FirstName)
	doctor.LastName = strings.TrimSpace(req.LastName)
	doctor.Specialization = strings.TrimSpace(req.Specialization)
	doctor.Phone = req.Phone
	if err := s.doctors.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}
