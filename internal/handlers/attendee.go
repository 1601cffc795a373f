package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/eventily/eventily-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendeeHandler struct {
	db *gorm.DB
}

func NewAttendeeHandler(db *gorm.DB) *AttendeeHandler {
	return &AttendeeHandler{db: db}
}

type ListAttendeesInput struct {
	Email string `query:"email" doc:"Substring match on email"`
	Phone string `query:"phone" doc:"Substring match on phone"`
	Skip  int    `query:"skip" default:"0" minimum:"0" doc:"Rows to skip"`
	Limit int    `query:"limit" default:"100" minimum:"1" doc:"Maximum rows to return"`
}

type ListAttendeesOutput struct {
	Body []models.Attendee
}

func (h *AttendeeHandler) HandleList(ctx context.Context, input *ListAttendeesInput) (*ListAttendeesOutput, error) {
	query := h.db.WithContext(ctx).Model(&models.Attendee{})

	if input.Email != "" {
		query = query.Where("email LIKE ?", "%"+input.Email+"%")
	}
	if input.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+input.Phone+"%")
	}

	var attendees []models.Attendee
	if err := query.Offset(input.Skip).Limit(input.Limit).Find(&attendees).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list attendees: " + err.Error())
	}
	return &ListAttendeesOutput{Body: attendees}, nil
}

type CreateAttendeeInput struct {
	Body struct {
		FirstName string `json:"first_name" maxLength:"50" minLength:"1" doc:"Given name" required:"true"`
		LastName  string `json:"last_name" maxLength:"50" minLength:"1" doc:"Family name" required:"true"`
		Email     string `json:"email" maxLength:"100" format:"email" doc:"Unique email address" required:"true"`
		Phone     string `json:"phone,omitempty" maxLength:"20" doc:"Phone number"`
	}
}

type AttendeeOutput struct {
	Body models.Attendee
}

func (h *AttendeeHandler) HandleCreate(ctx context.Context, input *CreateAttendeeInput) (*AttendeeOutput, error) {
	// Email uniqueness is checked with a pre-query rather than by catching a
	// constraint violation; a concurrent create for the same email can slip
	// past it.
	var existing models.Attendee
	if err := h.db.WithContext(ctx).Where("email = ?", input.Body.Email).First(&existing).Error; err == nil {
		return nil, huma.Error400BadRequest("Attendee with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, huma.Error500InternalServerError("Database error checking email: " + err.Error())
	}

	attendee := models.Attendee{
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
		Email:     input.Body.Email,
		Phone:     input.Body.Phone,
	}

	if err := h.db.WithContext(ctx).Create(&attendee).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create attendee: " + err.Error())
	}

	return &AttendeeOutput{Body: attendee}, nil
}

type GetAttendeeInput struct {
	ID uuid.UUID `path:"id" doc:"Attendee ID"`
}

type AttendeeProfileOutput struct {
	Body struct {
		models.Attendee
		Registrations []models.Registration `json:"registrations"`
		Events        []models.Event        `json:"events"`
	}
}

// HandleGet returns the attendee together with their registrations and the
// events those registrations point at.
func (h *AttendeeHandler) HandleGet(ctx context.Context, input *GetAttendeeInput) (*AttendeeProfileOutput, error) {
	var attendee models.Attendee
	if err := h.db.WithContext(ctx).First(&attendee, "id = ?", input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Attendee not found")
	}

	registrations := []models.Registration{}
	if err := h.db.WithContext(ctx).Where("attendee_id = ?", input.ID).Find(&registrations).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load registrations: " + err.Error())
	}

	events := []models.Event{}
	if len(registrations) > 0 {
		eventIDs := make([]uuid.UUID, 0, len(registrations))
		for _, registration := range registrations {
			eventIDs = append(eventIDs, registration.EventID)
		}
		if err := h.db.WithContext(ctx).Where("id IN ?", eventIDs).Find(&events).Error; err != nil {
			return nil, huma.Error500InternalServerError("Failed to load events: " + err.Error())
		}
	}

	res := &AttendeeProfileOutput{}
	res.Body.Attendee = attendee
	res.Body.Registrations = registrations
	res.Body.Events = events
	return res, nil
}
