package models

import (
	"time"

	"gorm.io/gorm"
)

// MedicalRecord is the clinical write-up of one completed appointment.
// PatientID and DoctorID are copied from the appointment at creation and never edited.
type MedicalRecord struct {
	ID            string         `gorm:"primaryKey;size:36;column:id" json:"id"`
	PatientID     string         `gorm:"size:36;not null;index;column:patient_id" json:"patient_id"`
	DoctorID      string         `gorm:"size:36;not null;index;column:doctor_id" json:"doctor_id"`
	AppointmentID string         `gorm:"size:36;not null;uniqueIndex;column:appointment_id" json:"appointment_id"`
	VisitDate     time.Time      `gorm:"not null;index;column:visit_date" json:"visit_date"`
	Symptoms      string         `gorm:"type:text;column:symptoms" json:"symptoms"`
	Diagnosis     string         `gorm:"type:text;column:diagnosis" json:"diagnosis"`
	Treatment     string         `gorm:"type:text;column:treatment" json:"treatment"`
	Notes         string         `gorm:"type:text;column:notes" json:"notes"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	Patient       *Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        *Doctor        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointment   *Appointment   `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:MedicalRecordID;constraint:OnDelete:CASCADE" json:"prescriptions,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

func (m *MedicalRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// Prescription belongs to one medical record. PatientID and DoctorID are copied from that record.
type Prescription struct {
	ID               string         `gorm:"primaryKey;size:36;column:id" json:"id"`
	MedicalRecordID  string         `gorm:"size:36;not null;index;column:medical_record_id" json:"medical_record_id"`
	PatientID        string         `gorm:"size:36;not null;index;column:patient_id" json:"patient_id"`
	DoctorID         string         `gorm:"size:36;not null;index;column:doctor_id" json:"doctor_id"`
	MedicineName     string         `gorm:"size:100;not null;column:medicine_name" json:"medicine_name"`
	Dosage           string         `gorm:"size:100;column:dosage" json:"dosage"`
	Duration         string         `gorm:"size:50;column:duration" json:"duration"`
	Instructions     string         `gorm:"type:text;column:instructions" json:"instructions"`
	PrescriptionDate time.Time      `gorm:"not null;index;column:prescription_date" json:"prescription_date"`
	Patient          *Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor           *Doctor        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	MedicalRecord    *MedicalRecord `gorm:"foreignKey:MedicalRecordID" json:"medical_record,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}
