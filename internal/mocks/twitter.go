package mocks

import (
	"context"
	"errors"
)

// MockTwitterRepo is a fake publishing collaborator that records posted text.
type MockTwitterRepo struct {
	PostedTexts []string
	TweetID     string
	Err         error
}

func (m *MockTwitterRepo) PostTweet(ctx context.Context, text string) (string, error) {
	m.PostedTexts = append(m.PostedTexts, text)
	if m.Err != nil {
		return "", m.Err
	}
	if m.TweetID != "" {
		return m.TweetID, nil
	}
	return "1234567890", nil
}

// FailWith configures the mock to fail with the given upstream message.
func (m *MockTwitterRepo) FailWith(message string) *MockTwitterRepo {
	m.Err = errors.New(message)
	return m
}
