package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	StartDate   time.Time `json:"start_date" gorm:"not null"`
	EndDate     time.Time `json:"end_date" gorm:"not null"`
	Location    string    `json:"location" gorm:"size:255"`
	// MaxCapacity is advisory only; registrations are never counted against it.
	MaxCapacity *int `json:"max_capacity"`
	// The default lives in the create handler, not in a column default: a
	// gorm default tag would override an explicit false on insert.
	IsActive   bool      `json:"is_active"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Registrations []Registration `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
