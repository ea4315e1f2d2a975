package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/postcraft/social-post-api/internal/service"
	"github.com/postcraft/social-post-api/internal/transport/middleware"
	"github.com/postcraft/social-post-api/internal/transport/response"
)

type Generate struct {
	generateService *service.Generate
}

func NewGenerate(generateService *service.Generate) *Generate {
	return &Generate{
		generateService: generateService,
	}
}

type generateResponse struct {
	Success bool   `json:"success"`
	Prompt  string `json:"prompt"`
	Post    string `json:"post"`
}

func (h *Generate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	log.Printf("request_id=%s generate request started", reqID)

	var req service.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("request_id=%s invalid generate payload: %v", reqID, err)
		response.WriteBadRequest(w, "No JSON data received")
		return
	}

	result, err := h.generateService.Process(r.Context(), req)
	if err != nil {
		log.Printf("request_id=%s generate failed: %v", reqID, err)
		writeServiceError(w, err)
		return
	}

	log.Printf("request_id=%s generate request completed", reqID)
	response.WriteJSON(w, http.StatusOK, generateResponse{
		Success: true,
		Prompt:  result.Prompt,
		Post:    result.Post,
	})
}
