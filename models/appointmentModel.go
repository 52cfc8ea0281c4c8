package models

import (
	"time"

	"gorm.io/gorm"
)

// AppointmentStatus is the workflow state of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusNoShow    AppointmentStatus = "NoShow"
)

// allowedTransitions lists the states reachable from each state. Terminal states have no entry.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// Valid reports whether s is a known status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s AppointmentStatus) IsTerminal() bool {
	return s.Valid() && len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, to := range allowedTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

// Appointment model
type Appointment struct {
	ID              string            `gorm:"primaryKey;size:36;column:id" json:"id"`
	PatientID       string            `gorm:"size:36;not null;index;column:patient_id" json:"patient_id"`
	DoctorID        string            `gorm:"size:36;not null;index;column:doctor_id" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"not null;index;column:appointment_date" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"size:20;not null;index;column:status" json:"status"`
	Reason          string            `gorm:"size:500;column:reason" json:"reason"`
	Notes           string            `gorm:"size:1000;column:notes" json:"notes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	Patient         *Patient          `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor          *Doctor           `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	MedicalRecord   *MedicalRecord    `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"medical_record,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// IsScheduled reports whether the appointment is still open.
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}
