package models

import (
	"time"

	"gorm.io/gorm"
)

// Patient model
type Patient struct {
	ID             string          `gorm:"primaryKey;size:36;column:id" json:"id"`
	UserID         string          `gorm:"size:36;not null;uniqueIndex;column:user_id" json:"user_id"`
	FirstName      string          `gorm:"size:50;not null;column:first_name" json:"first_name"`
	LastName       string          `gorm:"size:50;not null;index;column:last_name" json:"last_name"`
	DateOfBirth    time.Time       `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender         string          `gorm:"size:20;column:gender" json:"gender"`
	Phone          string          `gorm:"size:20;column:phone" json:"phone"`
	Address        string          `gorm:"size:255;column:address" json:"address"`
	BloodGroup     string          `gorm:"size:5;column:blood_group" json:"blood_group"`
	CreatedAt      time.Time       `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"appointments,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"medical_records,omitempty"`
	Prescriptions  []Prescription  `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"prescriptions,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// FullName joins first and last name.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Doctor model
type Doctor struct {
	ID              string          `gorm:"primaryKey;size:36;column:id" json:"id"`
	UserID          string          `gorm:"size:36;not null;uniqueIndex;column:user_id" json:"user_id"`
	FirstName       string          `gorm:"size:50;not null;column:first_name" json:"first_name"`
	LastName        string          `gorm:"size:50;not null;index;column:last_name" json:"last_name"`
	Specialization  string          `gorm:"size:100;not null;column:specialization" json:"specialization"`
	Phone           string          `gorm:"size:20;column:phone" json:"phone"`
	Email           string          `gorm:"size:100;column:email" json:"email"`
	ConsultationFee float64         `gorm:"type:decimal(18,2);column:consultation_fee" json:"consultation_fee"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments    []Appointment   `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"appointments,omitempty"`
	MedicalRecords  []MedicalRecord `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"medical_records,omitempty"`
	Prescriptions   []Prescription  `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"prescriptions,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = NewID()
	}
	return nil
}

// DisplayName is the name shown on dashboards.
func (d *Doctor) DisplayName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}
