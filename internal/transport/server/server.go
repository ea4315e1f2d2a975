package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/postcraft/social-post-api/internal/application"
	"github.com/postcraft/social-post-api/internal/transport/middleware"
)

// NewRouter configures the HTTP routes for the application
func NewRouter(app *application.Application) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)

	// Health check
	r.Handle("/health", app.HealthHandler).Methods("GET")

	// Content generation
	r.Handle("/generate", app.GenerateHandler).Methods("POST")

	// Twitter publishing
	r.Handle("/post-to-twitter", app.PublishHandler).Methods("POST")

	return r
}
