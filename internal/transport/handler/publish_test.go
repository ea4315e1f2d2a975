package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/postcraft/social-post-api/internal/mocks"
	"github.com/postcraft/social-post-api/internal/service"
)

func newPublishHandler(repo *mocks.MockTwitterRepo) *Publish {
	return NewPublish(service.NewPublish(repo))
}

func TestPublishHandler_Success(t *testing.T) {
	repo := &mocks.MockTwitterRepo{TweetID: "1921236407311626240"}
	handler := newPublishHandler(repo)

	req := httptest.NewRequest("POST", "/post-to-twitter", strings.NewReader(`{"post":"hello world"}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		TweetID  string `json:"tweet_id"`
		TweetURL string `json:"tweet_url"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Message != "Post successfully shared on Twitter!" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
	if resp.TweetID != "1921236407311626240" {
		t.Errorf("Unexpected tweet_id: %q", resp.TweetID)
	}
	if resp.TweetURL != "https://twitter.com/user/status/1921236407311626240" {
		t.Errorf("Unexpected tweet_url: %q", resp.TweetURL)
	}

	if len(repo.PostedTexts) != 1 || repo.PostedTexts[0] != "hello world" {
		t.Errorf("Expected text forwarded unmodified, got %v", repo.PostedTexts)
	}
}

func TestPublishHandler_TruncatesLongPost(t *testing.T) {
	repo := &mocks.MockTwitterRepo{TweetID: "42"}
	handler := newPublishHandler(repo)

	long := strings.Repeat("y", 281)
	body, _ := json.Marshal(map[string]string{"post": long})
	req := httptest.NewRequest("POST", "/post-to-twitter", strings.NewReader(string(body)))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	if len(repo.PostedTexts) != 1 {
		t.Fatalf("Expected one collaborator call, got %d", len(repo.PostedTexts))
	}
	posted := repo.PostedTexts[0]
	if utf8.RuneCountInString(posted) != 280 {
		t.Errorf("Expected posted text length 280, got %d", utf8.RuneCountInString(posted))
	}
	if posted != strings.Repeat("y", 277)+"..." {
		t.Errorf("Expected first 277 characters plus marker, got %q", posted)
	}
}

func TestPublishHandler_MissingText(t *testing.T) {
	repo := &mocks.MockTwitterRepo{}
	handler := newPublishHandler(repo)

	req := httptest.NewRequest("POST", "/post-to-twitter", strings.NewReader(`{"post":""}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No post text provided") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
	if len(repo.PostedTexts) != 0 {
		t.Errorf("Expected no collaborator calls, got %d", len(repo.PostedTexts))
	}
}

func TestPublishHandler_InvalidJSON(t *testing.T) {
	repo := &mocks.MockTwitterRepo{}
	handler := newPublishHandler(repo)

	req := httptest.NewRequest("POST", "/post-to-twitter", strings.NewReader("{"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No JSON data received") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestPublishHandler_UpstreamError(t *testing.T) {
	repo := (&mocks.MockTwitterRepo{}).FailWith("duplicate content")
	handler := newPublishHandler(repo)

	req := httptest.NewRequest("POST", "/post-to-twitter", strings.NewReader(`{"post":"hello"}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Twitter posting failed:") {
		t.Errorf("Expected upstream error prefix in body, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "duplicate content") {
		t.Errorf("Expected upstream message in body, got %s", w.Body.String())
	}
}
