package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/postcraft/social-post-api/internal/repository"
)

const promptTemplate = `Generate a %s social media post for a %s-year-old from %s, %s, interested in %s. The perspective should be %s. Start with: "%s"`

const (
	minAge = 1
	maxAge = 120
)

// GenerateRequest carries the demographic and preference fields for one post.
// Age is untyped because callers send it as either a JSON number or a string.
type GenerateRequest struct {
	Age         any    `json:"age"`
	Country     string `json:"country"`
	State       string `json:"state"`
	Interests   string `json:"interests"`
	Tone        string `json:"tone"`
	Perspective string `json:"perspective"`
	Hookline    string `json:"hookline"`
}

// GenerateResult holds the composed prompt and the generated post text.
type GenerateResult struct {
	Prompt string `json:"prompt"`
	Post   string `json:"post"`
}

// Generate validates requests, builds prompts, and calls the generation collaborator.
type Generate struct {
	generatorRepo repository.GeneratorRepository
}

func NewGenerate(generatorRepo repository.GeneratorRepository) *Generate {
	return &Generate{
		generatorRepo: generatorRepo,
	}
}

// Process validates the request, composes the prompt, and returns the
// generated post. All validation completes before the collaborator is called.
func (s *Generate) Process(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if missing := req.missingFields(); len(missing) > 0 {
		return nil, NewMissingFieldsError(missing)
	}

	ageStr := strings.TrimSpace(req.ageString())
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return nil, &ValidationError{Message: "Age must be a valid number"}
	}
	if age < minAge || age > maxAge {
		return nil, &ValidationError{Message: "Age must be between 1 and 120"}
	}

	prompt := fmt.Sprintf(promptTemplate,
		req.Tone, ageStr, req.State, req.Country, req.Interests, req.Perspective, req.Hookline)

	post, err := s.generatorRepo.GeneratePost(ctx, prompt)
	if err != nil {
		return nil, &UpstreamError{Service: "openai", Message: fmt.Sprintf("OpenAI API error: %s", err)}
	}

	return &GenerateResult{
		Prompt: prompt,
		Post:   strings.TrimSpace(post),
	}, nil
}

// missingFields returns the names of absent or blank required fields, in
// canonical order.
func (r GenerateRequest) missingFields() []string {
	checks := []struct {
		name  string
		value string
	}{
		{"age", r.ageString()},
		{"country", r.Country},
		{"state", r.State},
		{"interests", r.Interests},
		{"tone", r.Tone},
		{"perspective", r.Perspective},
		{"hookline", r.Hookline},
	}

	var missing []string
	for _, check := range checks {
		if strings.TrimSpace(check.value) == "" {
			missing = append(missing, check.name)
		}
	}
	return missing
}

// ageString renders the age field as text regardless of its JSON type.
func (r GenerateRequest) ageString() string {
	switch v := r.Age.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
