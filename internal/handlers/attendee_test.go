package handlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/eventily/eventily-api/internal/models"
	"github.com/google/uuid"
)

func TestHandleCreateAttendee(t *testing.T) {
	db := newTestDB(t)
	handler := NewAttendeeHandler(db)

	req := CreateAttendeeInput{}
	req.Body.FirstName = "Ada"
	req.Body.LastName = "Lovelace"
	req.Body.Email = "ada@example.com"
	req.Body.Phone = "+44 20 7946 0000"

	resp, err := handler.HandleCreate(context.Background(), &req)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	if resp.Body.Email != "ada@example.com" {
		t.Errorf("unexpected email '%s'", resp.Body.Email)
	}
}

func TestHandleCreateAttendee_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	handler := NewAttendeeHandler(db)

	req := CreateAttendeeInput{}
	req.Body.FirstName = "Ada"
	req.Body.LastName = "Lovelace"
	req.Body.Email = "ada@example.com"

	if _, err := handler.HandleCreate(context.Background(), &req); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	req.Body.FirstName = "Someone"
	req.Body.LastName = "Else"
	_, err := handler.HandleCreate(context.Background(), &req)
	if err == nil {
		t.Fatal("expected rejection of duplicate email")
	}
	if status := statusOf(t, err); status != 400 {
		t.Errorf("expected 400, got %d", status)
	}

	var count int64
	db.Model(&models.Attendee{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 attendee in DB, got %d", count)
	}
}

func TestHandleListAttendees_SubstringFilters(t *testing.T) {
	db := newTestDB(t)
	handler := NewAttendeeHandler(db)

	db.Create(&models.Attendee{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "111-222"})
	db.Create(&models.Attendee{FirstName: "Grace", LastName: "Hopper", Email: "grace@navy.mil", Phone: "333-444"})

	resp, err := handler.HandleList(context.Background(), &ListAttendeesInput{Email: "example", Limit: 100})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(resp.Body) != 1 || resp.Body[0].FirstName != "Ada" {
		t.Errorf("expected only Ada for email filter, got %d results", len(resp.Body))
	}

	resp, err = handler.HandleList(context.Background(), &ListAttendeesInput{Phone: "333", Limit: 100})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(resp.Body) != 1 || resp.Body[0].FirstName != "Grace" {
		t.Errorf("expected only Grace for phone filter, got %d results", len(resp.Body))
	}

	// Filters combine with AND.
	resp, err = handler.HandleList(context.Background(), &ListAttendeesInput{Email: "example", Phone: "333", Limit: 100})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(resp.Body) != 0 {
		t.Errorf("expected no match for combined filters, got %d", len(resp.Body))
	}
}

func TestHandleListAttendees_Pagination(t *testing.T) {
	db := newTestDB(t)
	handler := NewAttendeeHandler(db)

	for i := 0; i < 5; i++ {
		db.Create(&models.Attendee{
			FirstName: "User",
			LastName:  fmt.Sprintf("%d", i),
			Email:     fmt.Sprintf("user%d@example.com", i),
		})
	}

	resp, err := handler.HandleList(context.Background(), &ListAttendeesInput{Skip: 2, Limit: 2})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(resp.Body) != 2 {
		t.Errorf("expected 2 attendees with skip=2 limit=2, got %d", len(resp.Body))
	}
}

func TestHandleGetAttendee_Profile(t *testing.T) {
	db := newTestDB(t)
	handler := NewAttendeeHandler(db)

	category := models.Category{Name: "Tech"}
	db.Create(&category)
	event := models.Event{
		Title:      "Conf",
		StartDate:  time.Now(),
		EndDate:    time.Now().Add(time.Hour),
		IsActive:   true,
		CategoryID: category.ID,
	}
	db.Create(&event)

	attendee := models.Attendee{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	db.Create(&attendee)
	db.Create(&models.Registration{EventID: event.ID, AttendeeID: attendee.ID})

	resp, err := handler.HandleGet(context.Background(), &GetAttendeeInput{ID: attendee.ID})
	if err != nil {
		t.Fatalf("HandleGet returned error: %v", err)
	}
	if resp.Body.Email != "ada@example.com" {
		t.Errorf("unexpected email '%s'", resp.Body.Email)
	}
	if len(resp.Body.Registrations) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(resp.Body.Registrations))
	}
	if len(resp.Body.Events) != 1 || resp.Body.Events[0].ID != event.ID {
		t.Error("expected the registered event in the profile")
	}
}

func TestHandleGetAttendee_NotFound(t *testing.T) {
	db := newTestDB(t)
	handler := NewAttendeeHandler(db)

	_, err := handler.HandleGet(context.Background(), &GetAttendeeInput{ID: uuid.New()})
	if err == nil {
		t.Fatal("expected not found")
	}
	if status := statusOf(t, err); status != 404 {
		t.Errorf("expected 404, got %d", status)
	}
}
