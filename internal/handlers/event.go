package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/eventily/eventily-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventHandler struct {
	db *gorm.DB
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{db: db}
}

type ListEventsInput struct {
	CategoryID *uuid.UUID `query:"category_id" doc:"Filter by category"`
	IsActive   *bool      `query:"is_active" doc:"Filter by active flag"`
	StartDate  *time.Time `query:"start_date" doc:"Events starting on or after this date (only applied together with end_date)"`
	EndDate    *time.Time `query:"end_date" doc:"Events ending on or before this date (only applied together with start_date)"`
}

type ListEventsOutput struct {
	Body []models.Event
}

func (h *EventHandler) HandleList(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	query := h.db.WithContext(ctx).Model(&models.Event{})

	if input.CategoryID != nil {
		query = query.Where("category_id = ?", *input.CategoryID)
	}
	if input.IsActive != nil {
		query = query.Where("is_active = ?", *input.IsActive)
	}
	// A partial date range is ignored; both bounds must be supplied.
	if input.StartDate != nil && input.EndDate != nil {
		query = query.Where("start_date >= ? AND end_date <= ?", *input.StartDate, *input.EndDate)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list events: " + err.Error())
	}
	return &ListEventsOutput{Body: events}, nil
}

type CreateEventInput struct {
	Body struct {
		Title       string    `json:"title" maxLength:"255" minLength:"1" doc:"Event title" required:"true"`
		Description string    `json:"description,omitempty" doc:"Event description"`
		StartDate   time.Time `json:"start_date" doc:"Start of the event" required:"true"`
		EndDate     time.Time `json:"end_date" doc:"End of the event" required:"true"`
		Location    string    `json:"location,omitempty" maxLength:"255" doc:"Venue"`
		MaxCapacity *int      `json:"max_capacity,omitempty" doc:"Advisory capacity; not enforced"`
		IsActive    *bool     `json:"is_active,omitempty" doc:"Defaults to true"`
		CategoryID  uuid.UUID `json:"category_id" doc:"Owning category" required:"true"`
	}
}

type EventOutput struct {
	Body models.Event
}

func (h *EventHandler) HandleCreate(ctx context.Context, input *CreateEventInput) (*EventOutput, error) {
	// Verify the category exists so the caller gets a 404 instead of a
	// foreign-key error from the insert.
	var category models.Category
	if err := h.db.WithContext(ctx).First(&category, "id = ?", input.Body.CategoryID).Error; err != nil {
		return nil, huma.Error404NotFound("Category not found")
	}

	isActive := true
	if input.Body.IsActive != nil {
		isActive = *input.Body.IsActive
	}

	event := models.Event{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		StartDate:   input.Body.StartDate,
		EndDate:     input.Body.EndDate,
		Location:    input.Body.Location,
		MaxCapacity: input.Body.MaxCapacity,
		IsActive:    isActive,
		CategoryID:  input.Body.CategoryID,
	}

	if err := h.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create event: " + err.Error())
	}

	return &EventOutput{Body: event}, nil
}

type GetEventInput struct {
	ID uuid.UUID `path:"id" doc:"Event ID"`
}

type EventDetailOutput struct {
	Body struct {
		models.Event
		EventAttendees []models.Registration `json:"event_attendees"`
	}
}

func (h *EventHandler) HandleGet(ctx context.Context, input *GetEventInput) (*EventDetailOutput, error) {
	var event models.Event
	if err := h.db.WithContext(ctx).First(&event, "id = ?", input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Event not found")
	}

	registrations := []models.Registration{}
	if err := h.db.WithContext(ctx).Where("event_id = ?", input.ID).Find(&registrations).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load registrations: " + err.Error())
	}

	res := &EventDetailOutput{}
	res.Body.Event = event
	res.Body.EventAttendees = registrations
	return res, nil
}

type UpdateEventInput struct {
	ID   uuid.UUID `path:"id" doc:"Event ID"`
	Body struct {
		Title       *string    `json:"title,omitempty" maxLength:"255" minLength:"1"`
		Description *string    `json:"description,omitempty"`
		StartDate   *time.Time `json:"start_date,omitempty"`
		EndDate     *time.Time `json:"end_date,omitempty"`
		Location    *string    `json:"location,omitempty" maxLength:"255"`
		MaxCapacity *int       `json:"max_capacity,omitempty"`
		IsActive    *bool      `json:"is_active,omitempty"`
		CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	}
}

func (h *EventHandler) HandleUpdate(ctx context.Context, input *UpdateEventInput) (*EventOutput, error) {
	var event models.Event
	if err := h.db.WithContext(ctx).First(&event, "id = ?", input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Event not found")
	}

	if input.Body.CategoryID != nil {
		var category models.Category
		if err := h.db.WithContext(ctx).First(&category, "id = ?", *input.Body.CategoryID).Error; err != nil {
			return nil, huma.Error404NotFound("Category not found")
		}
		event.CategoryID = *input.Body.CategoryID
	}
	if input.Body.Title != nil {
		event.Title = *input.Body.Title
	}
	if input.Body.Description != nil {
		event.Description = *input.Body.Description
	}
	if input.Body.StartDate != nil {
		event.StartDate = *input.Body.StartDate
	}
	if input.Body.EndDate != nil {
		event.EndDate = *input.Body.EndDate
	}
	if input.Body.Location != nil {
		event.Location = *input.Body.Location
	}
	if input.Body.MaxCapacity != nil {
		event.MaxCapacity = input.Body.MaxCapacity
	}
	if input.Body.IsActive != nil {
		event.IsActive = *input.Body.IsActive
	}

	if err := h.db.WithContext(ctx).Save(&event).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update event: " + err.Error())
	}

	return &EventOutput{Body: event}, nil
}

type ListEventAttendeesInput struct {
	ID     uuid.UUID `path:"id" doc:"Event ID"`
	Status string    `query:"status" doc:"Optional registration status filter"`
}

type ListEventAttendeesOutput struct {
	Body []models.Attendee
}

func (h *EventHandler) HandleListAttendees(ctx context.Context, input *ListEventAttendeesInput) (*ListEventAttendeesOutput, error) {
	var event models.Event
	if err := h.db.WithContext(ctx).First(&event, "id = ?", input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Event not found")
	}

	query := h.db.WithContext(ctx).Model(&models.Attendee{}).
		Joins("JOIN registrations ON registrations.attendee_id = attendees.id").
		Where("registrations.event_id = ?", input.ID)

	if input.Status != "" {
		query = query.Where("registrations.status = ?", input.Status)
	}

	attendees := []models.Attendee{}
	if err := query.Find(&attendees).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list attendees: " + err.Error())
	}

	return &ListEventAttendeesOutput{Body: attendees}, nil
}
