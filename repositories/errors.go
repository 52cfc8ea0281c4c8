package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey is returned when an insert hits a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotScheduled is returned when a conditional status change finds the appointment already closed.
	ErrNotScheduled = errors.New("appointment is not scheduled")
	// ErrStatusChanged is returned when an edit finds the appointment no longer in the status it was read with.
	ErrStatusChanged = errors.New("appointment status changed")
)

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
