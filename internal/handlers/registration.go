package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/eventily/eventily-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationHandler struct {
	db *gorm.DB
}

func NewRegistrationHandler(db *gorm.DB) *RegistrationHandler {
	return &RegistrationHandler{db: db}
}

type ListRegistrationsOutput struct {
	Body []models.Registration
}

func (h *RegistrationHandler) HandleList(ctx context.Context, input *struct{}) (*ListRegistrationsOutput, error) {
	var registrations []models.Registration
	if err := h.db.WithContext(ctx).Find(&registrations).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list registrations: " + err.Error())
	}
	return &ListRegistrationsOutput{Body: registrations}, nil
}

type CreateRegistrationInput struct {
	Body struct {
		EventID    uuid.UUID                 `json:"event_id" doc:"Event to register for" required:"true"`
		AttendeeID uuid.UUID                 `json:"attendee_id" doc:"Attendee being registered" required:"true"`
		Status     models.RegistrationStatus `json:"status,omitempty" enum:"registered,confirmed,cancelled,waitlisted" default:"registered" doc:"Initial status"`
	}
}

type RegistrationOutput struct {
	Body models.Registration
}

// HandleCreate verifies both referenced rows exist and that the attendee is
// not already registered for the event, then inserts. The duplicate check is
// check-then-act; two concurrent creates for the same pair can both pass it.
func (h *RegistrationHandler) HandleCreate(ctx context.Context, input *CreateRegistrationInput) (*RegistrationOutput, error) {
	var registration models.Registration
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, "id = ?", input.Body.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return huma.Error404NotFound("Event not found")
			}
			return err
		}

		var attendee models.Attendee
		if err := tx.First(&attendee, "id = ?", input.Body.AttendeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return huma.Error404NotFound("Attendee not found")
			}
			return err
		}

		var existing models.Registration
		err := tx.Where("event_id = ? AND attendee_id = ?", input.Body.EventID, input.Body.AttendeeID).First(&existing).Error
		if err == nil {
			return huma.Error400BadRequest("Attendee is already registered for this event")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		registration = models.Registration{
			EventID:    input.Body.EventID,
			AttendeeID: input.Body.AttendeeID,
			Status:     input.Body.Status,
		}
		return tx.Create(&registration).Error
	})

	if err != nil {
		var statusErr huma.StatusError
		if errors.As(err, &statusErr) {
			return nil, statusErr
		}
		return nil, huma.Error500InternalServerError("Failed to create registration: " + err.Error())
	}

	return &RegistrationOutput{Body: registration}, nil
}

type GetRegistrationInput struct {
	ID uuid.UUID `path:"id" doc:"Registration ID"`
}

func (h *RegistrationHandler) HandleGet(ctx context.Context, input *GetRegistrationInput) (*RegistrationOutput, error) {
	var registration models.Registration
	if err := h.db.WithContext(ctx).First(&registration, "id = ?", input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Registration not found")
	}
	return &RegistrationOutput{Body: registration}, nil
}

type UpdateRegistrationStatusInput struct {
	ID   uuid.UUID `path:"id" doc:"Registration ID"`
	Body struct {
		Status models.RegistrationStatus `json:"status" enum:"registered,confirmed,cancelled,waitlisted" doc:"New status" required:"true"`
	}
}

// HandleUpdateStatus moves the registration to the requested status. Any of
// the four values is accepted from any prior status; there is no transition
// table and no terminal state.
func (h *RegistrationHandler) HandleUpdateStatus(ctx context.Context, input *UpdateRegistrationStatusInput) (*RegistrationOutput, error) {
	var registration models.Registration
	if err := h.db.WithContext(ctx).First(&registration, "id = ?", input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Registration not found")
	}

	registration.Status = input.Body.Status
	if err := h.db.WithContext(ctx).Save(&registration).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update registration: " + err.Error())
	}

	return &RegistrationOutput{Body: registration}, nil
}

type DeleteRegistrationInput struct {
	ID uuid.UUID `path:"id" doc:"Registration ID"`
}

func (h *RegistrationHandler) HandleDelete(ctx context.Context, input *DeleteRegistrationInput) (*struct{}, error) {
	var registration models.Registration
	if err := h.db.WithContext(ctx).First(&registration, "id = ?", input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Registration not found")
	}

	if err := h.db.WithContext(ctx).Delete(&registration).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete registration: " + err.Error())
	}

	return nil, nil
}
