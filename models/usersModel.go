package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the top-level area a user account belongs to. It never changes after creation.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// NewID returns a fresh opaque primary key.
func NewID() string {
	return uuid.NewString()
}

// User represents a login account
type User struct {
	ID        string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Email     string    `gorm:"size:100;not null;column:email" json:"email"`
	Password  string    `gorm:"size:255;not null;column:password" json:"-"`
	Role      Role      `gorm:"size:20;not null;index;column:role" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	Patient   *Patient  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor    *Doctor   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an id unless the caller pre-generated one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
