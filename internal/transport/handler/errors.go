package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/postcraft/social-post-api/internal/service"
	"github.com/postcraft/social-post-api/internal/transport/response"
)

// writeServiceError maps service errors to HTTP failure envelopes. Validation
// failures are client errors; everything else surfaces as a server error.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		response.WriteBadRequest(w, validationErr.Message)
		return
	}

	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		response.WriteInternalError(w, upstreamErr.Message)
		return
	}

	response.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Server error: %s", err))
}
