package utils

import (
	"CarePortal/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	genders     = []interface{}{"Male", "Female", "Other"}
	bloodGroups = []interface{}{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	statuses    = []interface{}{models.StatusScheduled, models.StatusCompleted, models.StatusCancelled, models.StatusNoShow}
)

func ValidateLogin(req *models.LoginRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

func ValidateRegister(req *models.RegisterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required, is.EmailFormat, validation.Length(0, 100)),
		validation.Field(&req.Password, validation.Required, validation.Length(6, 100)),
		validation.Field(&req.ConfirmPassword, validation.Required, validation.In(req.Password).Error("passwords do not match")),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.DateOfBirth, validation.Required, validation.Date(models.DateLayout).Max(time.Now())),
		validation.Field(&req.Gender, validation.Required, validation.In(genders...)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
		validation.Field(&req.Address, validation.Length(0, 255)),
		validation.Field(&req.BloodGroup, validation.In(bloodGroups...)),
	)
}

func ValidatePatientUpdate(req *models.PatientUpdateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
		validation.Field(&req.Address, validation.Length(0, 255)),
		validation.Field(&req.BloodGroup, validation.In(bloodGroups...)),
	)
}

func ValidateDoctorCreate(req *models.DoctorCreateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required.Error("email is required"), is.EmailFormat.Error("invalid email address"), validation.Length(0, 100)),
		validation.Field(&req.Password, validation.Required.Error("password is required"), validation.Length(6, 100).Error("password must be at least 6 characters")),
		validation.Field(&req.FirstName, validation.Required.Error("first name is required"), validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required.Error("last name is required"), validation.Length(1, 50)),
		validation.Field(&req.Specialization, validation.Required.Error("specialization is required"), validation.Length(1, 100)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
		validation.Field(&req.ConsultationFee, validation.Min(0.0), validation.Max(10000.0).Error("consultation fee must be between 0 and 10000")),
	)
}

func ValidateDoctorUpdate(req *models.DoctorUpdateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Specialization, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
	)
}

// ValidateAppointment checks a booking. Patients book for themselves, so the
// patient id is only required from admins.
func ValidateAppointment(req *models.AppointmentRequest, requirePatient bool) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.PatientID, validation.When(requirePatient, validation.Required.Error("patient is required"))),
		validation.Field(&req.DoctorID, validation.Required.Error("doctor is required")),
		validation.Field(&req.AppointmentDate, validation.Required.Error("appointment date is required")),
		validation.Field(&req.Reason, validation.Required.Error("reason is required"), validation.Length(1, 500)),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
	)
}

func ValidateAppointmentUpdate(req *models.AppointmentUpdateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.PatientID, validation.Required.Error("patient is required")),
		validation.Field(&req.DoctorID, validation.Required.Error("doctor is required")),
		validation.Field(&req.AppointmentDate, validation.Required.Error("appointment date is required")),
		validation.Field(&req.Status, validation.Required, validation.In(statuses...).Error("unknown status")),
		validation.Field(&req.Reason, validation.Required.Error("reason is required"), validation.Length(1, 500)),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
	)
}

func ValidateMedicalRecord(req *models.MedicalRecordRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.AppointmentID, validation.Required.Error("appointment is required")),
		validation.Field(&req.Symptoms, validation.Length(0, 4000)),
		validation.Field(&req.Diagnosis, validation.Required.Error("diagnosis is required"), validation.Length(1, 4000)),
		validation.Field(&req.Treatment, validation.Length(0, 4000)),
		validation.Field(&req.Notes, validation.Length(0, 4000)),
	)
}

func ValidateMedicalRecordUpdate(req *models.MedicalRecordUpdateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Symptoms, validation.Length(0, 4000)),
		validation.Field(&req.Diagnosis, validation.Required.Error("diagnosis is required"), validation.Length(1, 4000)),
		validation.Field(&req.Treatment, validation.Length(0, 4000)),
		validation.Field(&req.Notes, validation.Length(0, 4000)),
	)
}

func ValidatePrescription(req *models.PrescriptionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.MedicalRecordID, validation.Required.Error("medical record is required")),
		validation.Field(&req.MedicineName, validation.Required.Error("medicine name is required"), validation.Length(1, 100)),
		validation.Field(&req.Dosage, validation.Length(0, 100)),
		validation.Field(&req.Duration, validation.Length(0, 50)),
		validation.Field(&req.Instructions, validation.Length(0, 2000)),
	)
}

func ValidatePrescriptionUpdate(req *models.PrescriptionUpdateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.MedicineName, validation.Required.Error("medicine name is required"), validation.Length(1, 100)),
		validation.Field(&req.Dosage, validation.Length(0, 100)),
		validation.Field(&req.Duration, validation.Length(0, 50)),
		validation.Field(&req.Instructions, validation.Length(0, 2000)),
	)
}
