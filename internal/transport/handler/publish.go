package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/postcraft/social-post-api/internal/service"
	"github.com/postcraft/social-post-api/internal/transport/middleware"
	"github.com/postcraft/social-post-api/internal/transport/response"
)

type Publish struct {
	publishService *service.Publish
}

func NewPublish(publishService *service.Publish) *Publish {
	return &Publish{
		publishService: publishService,
	}
}

type publishResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TweetID  string `json:"tweet_id"`
	TweetURL string `json:"tweet_url"`
}

func (h *Publish) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	log.Printf("request_id=%s publish request started", reqID)

	var req service.PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("request_id=%s invalid publish payload: %v", reqID, err)
		response.WriteBadRequest(w, "No JSON data received")
		return
	}

	result, err := h.publishService.Process(r.Context(), req)
	if err != nil {
		log.Printf("request_id=%s publish failed: %v", reqID, err)
		writeServiceError(w, err)
		return
	}

	log.Printf("request_id=%s published tweet %s", reqID, result.TweetID)
	response.WriteJSON(w, http.StatusOK, publishResponse{
		Success:  true,
		Message:  "Post successfully shared on Twitter!",
		TweetID:  result.TweetID,
		TweetURL: result.TweetURL,
	})
}
