package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/postcraft/social-post-api/internal/repository"
)

const (
	// maxPostLength is the platform character limit for a single tweet.
	maxPostLength = 280
	// truncateLength leaves room for the truncation marker within the limit.
	truncateLength   = 277
	truncationMarker = "..."
)

// PublishRequest carries the text to publish.
type PublishRequest struct {
	Post string `json:"post"`
}

// PublishResult holds the assigned tweet ID and its derived URL.
type PublishResult struct {
	TweetID  string `json:"tweet_id"`
	TweetURL string `json:"tweet_url"`
}

// Publish validates text payloads, enforces the length limit, and calls the
// publishing collaborator.
type Publish struct {
	twitterRepo repository.TwitterRepository
}

func NewPublish(twitterRepo repository.TwitterRepository) *Publish {
	return &Publish{
		twitterRepo: twitterRepo,
	}
}

// Process validates the request, truncates over-limit text, and publishes it.
// Each call publishes once; there is no idempotency key.
func (s *Publish) Process(ctx context.Context, req PublishRequest) (*PublishResult, error) {
	if strings.TrimSpace(req.Post) == "" {
		return nil, &ValidationError{Message: "No post text provided"}
	}

	text := TruncateToLimit(req.Post)

	id, err := s.twitterRepo.PostTweet(ctx, text)
	if err != nil {
		return nil, &UpstreamError{Service: "twitter", Message: fmt.Sprintf("Twitter posting failed: %s", err)}
	}

	return &PublishResult{
		TweetID:  id,
		TweetURL: fmt.Sprintf("https://twitter.com/user/status/%s", id),
	}, nil
}

// TruncateToLimit enforces the platform limit. Text over the limit is cut at
// a raw rune count and marked, yielding exactly maxPostLength runes; the cut
// is not word-aware.
func TruncateToLimit(text string) string {
	runes := []rune(text)
	if len(runes) <= maxPostLength {
		return text
	}
	return string(runes[:truncateLength]) + truncationMarker
}
