package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationStatus string

const (
	StatusRegistered RegistrationStatus = "registered"
	StatusConfirmed  RegistrationStatus = "confirmed"
	StatusCancelled  RegistrationStatus = "cancelled"
	StatusWaitlisted RegistrationStatus = "waitlisted"
)

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case StatusRegistered, StatusConfirmed, StatusCancelled, StatusWaitlisted:
		return true
	}
	return false
}

// Registration links one Attendee to one Event. At most one registration may
// exist per (event, attendee) pair; the check lives in the handler, not in a
// database constraint, so two concurrent creates can still race.
type Registration struct {
	ID               uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	EventID          uuid.UUID          `json:"event_id" gorm:"type:uuid;not null;index"`
	AttendeeID       uuid.UUID          `json:"attendee_id" gorm:"type:uuid;not null;index"`
	Status           RegistrationStatus `json:"status" gorm:"size:20;not null;default:registered"`
	RegistrationDate time.Time          `json:"registration_date"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = StatusRegistered
	}
	if r.RegistrationDate.IsZero() {
		r.RegistrationDate = time.Now().UTC()
	}
	return nil
}
