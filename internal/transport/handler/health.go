package handler

import (
	"net/http"

	"github.com/postcraft/social-post-api/internal/transport/response"
)

const version = "1.0.0"

type Health struct{}

func NewHealth() *Health {
	return &Health{}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Message: "Backend is running",
		Version: version,
	})
}
