package services

import (
	"CarePortal/models"
	"CarePortal/repositories"
	"context"
	"errors"
	"sync/atomic"
)

var errNotMocked = errors.New("not implemented in mock")

// --- MockUserRepository ---
var _ repositories.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	EmailExistsFunc          func(ctx context.Context, email string) (bool, error)
	GetUserByEmailFunc       func(ctx context.Context, email string) (*models.User, error)
	GetUserByIDFunc          func(ctx context.Context, userID string) (*models.User, error)
	CreatePatientAccountFunc func(ctx context.Context, user *models.User, patient *models.Patient) error
	CreateDoctorAccountFunc  func(ctx context.Context, user *models.User, doctor *models.Doctor) error

	CreateCallCount int32
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return nil, errNotMocked
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *MockUserRepository) CreatePatientAccount(ctx context.Context, user *models.User, patient *models.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreatePatientAccountFunc != nil {
		return m.CreatePatientAccountFunc(ctx, user, patient)
	}
	return nil
}

func (m *MockUserRepository) CreateDoctorAccount(ctx context.Context, user *models.User, doctor *models.Doctor) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateDoctorAccountFunc != nil {
		return m.CreateDoctorAccountFunc(ctx, user, doctor)
	}
	return nil
}

// --- MockPatientRepository ---
var _ repositories.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	GetAllFunc      func(ctx context.Context) ([]models.Patient, error)
	GetByIDFunc     func(ctx context.Context, id string) (*models.Patient, error)
	GetByUserIDFunc func(ctx context.Context, userID string) (*models.Patient, error)
	GetDetailsFunc  func(ctx context.Context, id string) (*models.Patient, error)
	UpdateFunc      func(ctx context.Context, patient *models.Patient) error

	UpdateCallCount int32
}

func (m *MockPatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockPatientRepository) GetByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *MockPatientRepository) GetDetails(ctx context.Context, id string) (*models.Patient, error) {
	if m.GetDetailsFunc != nil {
		return m.GetDetailsFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

// --- MockDoctorRepository ---
var _ repositories.DoctorRepository = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	GetAllFunc      func(ctx context.Context) ([]models.Doctor, error)
	GetByIDFunc     func(ctx context.Context, id string) (*models.Doctor, error)
	GetByUserIDFunc func(ctx context.Context, userID string) (*models.Doctor, error)
	GetDetailsFunc  func(ctx context.Context, id string) (*models.Doctor, error)
	UpdateFunc      func(ctx context.Context, doctor *models.Doctor) error
}

func (m *MockDoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockDoctorRepository) GetByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *MockDoctorRepository) GetDetails(ctx context.Context, id string) (*models.Doctor, error) {
	if m.GetDetailsFunc != nil {
		return m.GetDetailsFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doctor)
	}
	return nil
}

// --- MockAppointmentRepository ---
var _ repositories.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc               func(ctx context.Context, appointment *models.Appointment) error
	GetByIDFunc              func(ctx context.Context, id string) (*models.Appointment, error)
	GetAllFunc               func(ctx context.Context) ([]models.Appointment, error)
	ListByPatientFunc        func(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctorFunc         func(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListPendingForDoctorFunc func(ctx context.Context, doctorID string) ([]models.Appointment, error)
	UpdateFunc               func(ctx context.Context, appointment *models.Appointment, expected models.AppointmentStatus) error
	TransitionStatusFunc     func(ctx context.Context, id string, from, to models.AppointmentStatus) error
	DeleteFunc               func(ctx context.Context, id string) (bool, error)

	CreateCallCount     int32
	UpdateCallCount     int32
	TransitionCallCount int32
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockAppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) ListPendingForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	if m.ListPendingForDoctorFunc != nil {
		return m.ListPendingForDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment, expected models.AppointmentStatus) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appointment, expected)
	}
	return nil
}

func (m *MockAppointmentRepository) TransitionStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error {
	atomic.AddInt32(&m.TransitionCallCount, 1)
	if m.TransitionStatusFunc != nil {
		return m.TransitionStatusFunc(ctx, id, from, to)
	}
	return nil
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

// --- MockRoleSource ---
type MockRoleSource struct {
	CurrentRoleFunc func(ctx context.Context, userID string) (models.Role, error)
	CallCount       int32
}

func (m *MockRoleSource) CurrentRole(ctx context.Context, userID string) (models.Role, error) {
	atomic.AddInt32(&m.CallCount, 1)
	if m.CurrentRoleFunc != nil {
		return m.CurrentRoleFunc(ctx, userID)
	}
	return "", nil
}

// --- recordingMailer ---
type sentMail struct {
	To, Subject, Text string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(to, subject, text, _ string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Text: text})
	return m.err
}
