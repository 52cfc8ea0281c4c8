package services

import (
	"CarePortal/models"
	"CarePortal/repositories"
	"CarePortal/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// accountCreator opens user accounts together with their role profile.
type accountCreator struct {
	users repositories.UserRepository
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func (c accountCreator) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := c.users.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateEmail
	}
	return nil
}

func (c accountCreator) createPatient(ctx context.Context, req models.RegisterRequest) (*models.User, *models.Patient, error) {
	req.Email = normalizeEmail(req.Email)
	if err := asValidationError(utils.ValidateRegister(&req)); err != nil {
		return nil, nil, err
	}
	if err := c.ensureEmailFree(ctx, req.Email); err != nil {
		return nil, nil, err
	}

	dob, err := time.Parse(models.DateLayout, req.DateOfBirth)
	if err != nil {
		return nil, nil, fieldError("date_of_birth", "must be a valid date")
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: req.Email, Password: hash, Role: models.RolePatient}
	patient := &models.Patient{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		DateOfBirth: dob,
		Gender:      req.Gender,
		Phone:       req.Phone,
		Address:     req.Address,
		BloodGroup:  req.BloodGroup,
	}
	if err := c.users.CreatePatientAccount(ctx, user, patient); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, nil, ErrDuplicateEmail
		}
		return nil, nil, err
	}
	return user, patient, nil
}

func (c accountCreator) createDoctor(ctx context.Context, req models.DoctorCreateRequest) (*models.Doctor, error) {
	req.Email = normalizeEmail(req.Email)
	if err := asValidationError(utils.ValidateDoctorCreate(&req)); err != nil {
		return nil, err
	}
	if err := c.ensureEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: req.Email, Password: hash, Role: models.RoleDoctor}
	doctor := &models.Doctor{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Specialization:  strings.TrimSpace(req.Specialization),
		Phone:           req.Phone,
		Email:           req.Email,
		ConsultationFee: req.ConsultationFee,
	}
	if err := c.users.CreateDoctorAccount(ctx, user, doctor); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return doctor, nil
}
