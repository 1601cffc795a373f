package models

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRegistrationStatusIsValid(t *testing.T) {
	valid := []RegistrationStatus{StatusRegistered, StatusConfirmed, StatusCancelled, StatusWaitlisted}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("'%s' should be valid", s)
		}
	}

	for _, s := range []RegistrationStatus{"", "attended", "REGISTERED"} {
		if s.IsValid() {
			t.Errorf("'%s' should be invalid", s)
		}
	}
}

func TestRegistrationBeforeCreateDefaults(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Category{}, &Event{}, &Attendee{}, &Registration{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}

	registration := Registration{EventID: uuid.New(), AttendeeID: uuid.New()}
	if err := db.Create(&registration).Error; err != nil {
		t.Fatalf("failed to create registration: %v", err)
	}

	if registration.ID == uuid.Nil {
		t.Error("expected a generated ID")
	}
	if registration.Status != StatusRegistered {
		t.Errorf("expected default status 'registered', got '%s'", registration.Status)
	}
	if registration.RegistrationDate.IsZero() {
		t.Error("expected registration_date to be set")
	}
}
