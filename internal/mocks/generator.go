package mocks

import (
	"context"
	"errors"
)

// MockGeneratorRepo is a fake generation collaborator that records prompts.
type MockGeneratorRepo struct {
	Prompts []string
	Post    string
	Err     error
}

func (m *MockGeneratorRepo) GeneratePost(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Post != "" {
		return m.Post, nil
	}
	return "test post", nil
}

// FailWith configures the mock to fail with the given upstream message.
func (m *MockGeneratorRepo) FailWith(message string) *MockGeneratorRepo {
	m.Err = errors.New(message)
	return m
}
