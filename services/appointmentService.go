package services

import (
	"CarePortal/models"
	"CarePortal/repositories"
	"CarePortal/utils"
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

type AppointmentService struct {
	appointments repositories.AppointmentRepository
	patients     repositories.PatientRepository
	doctors      repositories.DoctorRepository
	notifier     *Notifier
}

func NewAppointmentService(
	appointments repositories.AppointmentRepository,
	patients repositories.PatientRepository,
	doctors repositories.DoctorRepository,
	notifier *Notifier,
) *AppointmentService {
	if notifier == nil {
		notifier = NewNotifier(nil)
	}
	return &AppointmentService{appointments: appointments, patients: patients, doctors: doctors, notifier: notifier}
}

// List returns every appointment. Admin only.
func (s *AppointmentService) List(ctx context.Context, actor Actor) ([]models.Appointment, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}
	return s.appointments.GetAll(ctx)
}

// Mine returns the calling patient's appointments, newest first.
func (s *AppointmentService) Mine(ctx context.Context, actor Actor) ([]models.Appointment, error) {
	patient, err := s.callerPatient(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.appointments.ListByPatient(ctx, patient.ID)
}

// Calendar lists all appointments for admins and the doctor's own for doctors.
func (s *AppointmentService) Calendar(ctx context.Context, actor Actor) ([]models.Appointment, error) {
	switch {
	case actor.IsAdmin():
		return s.appointments.GetAll(ctx)
	case actor.IsDoctor():
		doctor, err := s.callerDoctor(ctx, actor)
		if err != nil {
			return nil, err
		}
		return s.appointments.ListByDoctor(ctx, doctor.ID)
	}
	return nil, ErrAccessDenied
}

func (s *AppointmentService) Get(ctx context.Context, actor Actor, id string) (*models.Appointment, error) {
	appt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewAppointment(actor, appt) {
		return nil, ErrAccessDenied
	}
	return appt, nil
}

// Create books an appointment. Admins book for any patient; a patient always books for themselves.
func (s *AppointmentService) Create(ctx context.Context, actor Actor, req models.AppointmentRequest) (*models.Appointment, error) {
	if !actor.IsAdmin() && !actor.IsPatient() {
		return nil, ErrAccessDenied
	}
	if actor.IsPatient() {
		patient, err := s.callerPatient(ctx, actor)
		if err != nil {
			return nil, err
		}
		req.PatientID = patient.ID
	}
	if err := asValidationError(utils.ValidateAppointment(&req, actor.IsAdmin())); err != nil {
		return nil, err
	}
	if err := s.checkParticipants(ctx, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Status:          models.StatusScheduled,
		Reason:          req.Reason,
		Notes:           req.Notes,
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}
	log.Info().Str("appointment_id", appt.ID).Str("patient_id", appt.PatientID).Str("doctor_id", appt.DoctorID).Msg("appointment booked")

	created, err := s.appointments.GetByID(ctx, appt.ID)
	if err != nil || created == nil {
		return appt, err
	}
	s.notifier.AppointmentBooked(created)
	return created, nil
}

// Update is the admin edit. A status change must follow the workflow.
func (s *AppointmentService) Update(ctx context.Context, actor Actor, id string, req models.AppointmentUpdateRequest) (*models.Appointment, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}
	if err := asValidationError(utils.ValidateAppointmentUpdate(&req)); err != nil {
		return nil, err
	}
	appt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != appt.Status && !appt.Status.CanTransitionTo(req.Status) {
		return nil, ErrInvalidTransition
	}
	if appt.MedicalRecord != nil && (req.PatientID != appt.PatientID || req.DoctorID != appt.DoctorID) {
		return nil, fieldError("patient_id", "an appointment with a medical record cannot be reassigned")
	}
	if err := s.checkParticipants(ctx, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	loaded := appt.Status
	appt.PatientID = req.PatientID
	appt.DoctorID = req.DoctorID
	appt.AppointmentDate = req.AppointmentDate
	appt.Status = req.Status
	appt.Reason = req.Reason
	appt.Notes = req.Notes
	if err := s.appointments.Update(ctx, appt, loaded); err != nil {
		if errors.Is(err, repositories.ErrStatusChanged) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}
	return s.appointments.GetByID(ctx, id)
}

// Delete removes the appointment with its record and prescriptions. Admin only.
func (s *AppointmentService) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrAccessDenied
	}
	deleted, err := s.appointments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	log.Info().Str("appointment_id", id).Str("by", actor.UserID).Msg("appointment deleted")
	return nil
}

// Cancel is allowed to admins and the owning patient.
func (s *AppointmentService) Cancel(ctx context.Context, actor Actor, id string) (*models.Appointment, error) {
	appt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canCancelAppointment(actor, appt) {
		return nil, ErrAccessDenied
	}
	if err := s.transition(ctx, appt, models.StatusCancelled); err != nil {
		return nil, err
	}
	s.notifier.AppointmentCancelled(appt)
	return appt, nil
}

// Complete is allowed to the assigned doctor only.
func (s *AppointmentService) Complete(ctx context.Context, actor Actor, id string) (*models.Appointment, error) {
	appt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canCompleteAppointment(actor, appt) {
		return nil, ErrAccessDenied
	}
	if err := s.transition(ctx, appt, models.StatusCompleted); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) transition(ctx context.Context, appt *models.Appointment, to models.AppointmentStatus) error {
	if !appt.Status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	if err := s.appointments.TransitionStatus(ctx, appt.ID, appt.Status, to); err != nil {
		if errors.Is(err, repositories.ErrNotScheduled) {
			return ErrInvalidTransition
		}
		return err
	}
	appt.Status = to
	log.Info().Str("appointment_id", appt.ID).Str("status", string(to)).Msg("appointment status changed")
	return nil
}

func (s *AppointmentService) load(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	return appt, nil
}

func (s *AppointmentService) checkParticipants(ctx context.Context, patientID, doctorID string) error {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return fieldError("patient_id", "unknown patient")
	}
	doctor, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return fieldError("doctor_id", "unknown doctor")
	}
	return nil
}

func (s *AppointmentService) callerPatient(ctx context.Context, actor Actor) (*models.Patient, error) {
	return callerPatient(ctx, s.patients, actor)
}

func (s *AppointmentService) callerDoctor(ctx context.Context, actor Actor) (*models.Doctor, error) {
	return callerDoctor(ctx, s.doctors, actor)
}

// callerPatient resolves the patient profile of a Patient actor.
func callerPatient(ctx context.Context, patients repositories.PatientRepository, actor Actor) (*models.Patient, error) {
	if !actor.IsPatient() {
		return nil, ErrAccessDenied
	}
	patient, err := patients.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	return patient, nil
}

// callerDoctor resolves the doctor profile of a Doctor actor.
func callerDoctor(ctx context.Context, doctors repositories.DoctorRepository, actor Actor) (*models.Doctor, error) {
	if !actor.IsDoctor() {
		return nil, ErrAccessDenied
	}
	doctor, err := doctors.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrNotFound
	}
	return doctor, nil
}
