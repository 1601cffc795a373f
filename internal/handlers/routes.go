package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/eventily/eventily-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const apiVersion = "1.0.0"

func RegisterRoutes(r *chi.Mux, cfg *config.Config, rootHandler *RootHandler, categoryHandler *CategoryHandler, eventHandler *EventHandler, attendeeHandler *AttendeeHandler, registrationHandler *RegistrationHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}))
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Eventily API", apiVersion)
	humaConfig.Info.Description = "API for Event Management"
	api := humachi.New(r, humaConfig)

	RegisterAPI(api, rootHandler, categoryHandler, eventHandler, attendeeHandler, registrationHandler)
}

// RegisterAPI binds every operation onto the given huma API. Split out from
// RegisterRoutes so tests can bind the same operations onto a humatest API.
func RegisterAPI(api huma.API, rootHandler *RootHandler, categoryHandler *CategoryHandler, eventHandler *EventHandler, attendeeHandler *AttendeeHandler, registrationHandler *RegistrationHandler) {
	created := func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	}

	huma.Get(api, "/", rootHandler.HandleRoot)
	huma.Get(api, "/health", rootHandler.HandleHealth)

	huma.Get(api, "/categories", categoryHandler.HandleList)
	huma.Post(api, "/categories", categoryHandler.HandleCreate, created)
	huma.Put(api, "/categories/{id}", categoryHandler.HandleUpdate)
	huma.Delete(api, "/categories/{id}", categoryHandler.HandleDelete)

	huma.Get(api, "/events", eventHandler.HandleList)
	huma.Post(api, "/events", eventHandler.HandleCreate, created)
	huma.Get(api, "/events/{id}", eventHandler.HandleGet)
	huma.Put(api, "/events/{id}", eventHandler.HandleUpdate)
	huma.Get(api, "/events/{id}/attendees", eventHandler.HandleListAttendees)

	huma.Get(api, "/attendees", attendeeHandler.HandleList)
	huma.Post(api, "/attendees", attendeeHandler.HandleCreate, created)
	huma.Get(api, "/attendees/{id}", attendeeHandler.HandleGet)

	huma.Get(api, "/registrations", registrationHandler.HandleList)
	huma.Post(api, "/registrations", registrationHandler.HandleCreate, created)
	huma.Get(api, "/registrations/{id}", registrationHandler.HandleGet)
	huma.Patch(api, "/registrations/{id}", registrationHandler.HandleUpdateStatus)
	huma.Delete(api, "/registrations/{id}", registrationHandler.HandleDelete)
}
