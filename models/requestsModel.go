package models

import "time"

// DateLayout is the wire format for calendar dates such as a date of birth.
const DateLayout = "2006-01-02"

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterRequest is the self-service patient sign-up form.
type RegisterRequest struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	FirstName       string `json:"first_name" form:"first_name"`
	LastName        string `json:"last_name" form:"last_name"`
	DateOfBirth     string `json:"date_of_birth" form:"date_of_birth"`
	Gender          string `json:"gender" form:"gender"`
	Phone           string `json:"phone" form:"phone"`
	Address         string `json:"address" form:"address"`
	BloodGroup      string `json:"blood_group" form:"blood_group"`
}

// PatientUpdateRequest holds the fields a patient may change on their own profile.
type PatientUpdateRequest struct {
	FirstName  string `json:"first_name" form:"first_name"`
	LastName   string `json:"last_name" form:"last_name"`
	Phone      string `json:"phone" form:"phone"`
	Address    string `json:"address" form:"address"`
	BloodGroup string `json:"blood_group" form:"blood_group"`
}

// DoctorCreateRequest is used by admins to open a doctor account.
type DoctorCreateRequest struct {
	Email           string  `json:"email" form:"email"`
	Password        string  `json:"password" form:"password"`
	FirstName       string  `json:"first_name" form:"first_name"`
	LastName        string  `json:"last_name" form:"last_name"`
	Specialization  string  `json:"specialization" form:"specialization"`
	Phone           string  `json:"phone" form:"phone"`
	ConsultationFee float64 `json:"consultation_fee" form:"consultation_fee"`
}

type DoctorUpdateRequest struct {
	FirstName      string `json:"first_name" form:"first_name"`
	LastName       string `json:"last_name" form:"last_name"`
	Specialization string `json:"specialization" form:"specialization"`
	Phone          string `json:"phone" form:"phone"`
}

// AppointmentRequest is the booking form. PatientID is ignored for patient callers.
type AppointmentRequest struct {
	PatientID       string    `json:"patient_id" form:"patient_id"`
	DoctorID        string    `json:"doctor_id" form:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date" form:"appointment_date" time_format:"2006-01-02T15:04"`
	Reason          string    `json:"reason" form:"reason"`
	Notes           string    `json:"notes" form:"notes"`
}

// AppointmentUpdateRequest is the admin edit form.
type AppointmentUpdateRequest struct {
	PatientID       string            `json:"patient_id" form:"patient_id"`
	DoctorID        string            `json:"doctor_id" form:"doctor_id"`
	AppointmentDate time.Time         `json:"appointment_date" form:"appointment_date" time_format:"2006-01-02T15:04"`
	Status          AppointmentStatus `json:"status" form:"status"`
	Reason          string            `json:"reason" form:"reason"`
	Notes           string            `json:"notes" form:"notes"`
}

type MedicalRecordRequest struct {
	AppointmentID string `json:"appointment_id" form:"appointment_id"`
	Symptoms      string `json:"symptoms" form:"symptoms"`
	Diagnosis     string `json:"diagnosis" form:"diagnosis"`
	Treatment     string `json:"treatment" form:"treatment"`
	Notes         string `json:"notes" form:"notes"`
}

type MedicalRecordUpdateRequest struct {
	Symptoms  string `json:"symptoms" form:"symptoms"`
	Diagnosis string `json:"diagnosis" form:"diagnosis"`
	Treatment string `json:"treatment" form:"treatment"`
	Notes     string `json:"notes" form:"notes"`
}

type PrescriptionRequest struct {
	MedicalRecordID string `json:"medical_record_id" form:"medical_record_id"`
	MedicineName    string `json:"medicine_name" form:"medicine_name"`
	Dosage          string `json:"dosage" form:"dosage"`
	Duration        string `json:"duration" form:"duration"`
	Instructions    string `json:"instructions" form:"instructions"`
}

type PrescriptionUpdateRequest struct {
	MedicineName string `json:"medicine_name" form:"medicine_name"`
	Dosage       string `json:"dosage" form:"dosage"`
	Duration     string `json:"duration" form:"duration"`
	Instructions string `json:"instructions" form:"instructions"`
}
