package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/eventily/eventily-api/internal/config"
	"github.com/eventily/eventily-api/internal/database"
	"github.com/eventily/eventily-api/internal/handlers"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	rootHandler := handlers.NewRootHandler()
	categoryHandler := handlers.NewCategoryHandler(db)
	eventHandler := handlers.NewEventHandler(db)
	attendeeHandler := handlers.NewAttendeeHandler(db)
	registrationHandler := handlers.NewRegistrationHandler(db)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, rootHandler, categoryHandler, eventHandler, attendeeHandler, registrationHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
