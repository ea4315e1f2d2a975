package openai

import (
	"context"
	"fmt"
	"strings"

	openaigo "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// systemPrompt frames the assistant for every generation request.
const systemPrompt = "You are a social media content expert. Generate engaging, authentic social media posts that match the specified tone and perspective."

// Generation parameters are fixed; callers only supply the prompt.
const (
	maxTokens   = 300
	temperature = 0.7
)

// Client handles OpenAI chat completion operations
type Client struct {
	model string
	opts  []option.RequestOption
}

// NewClient creates a new OpenAI API client
func NewClient(apiKey, model, baseURL string) *Client {
	// Single attempt per call; the SDK retries by default.
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		model: model,
		opts:  opts,
	}
}

// GeneratePost sends the prompt to the chat completion API and returns the
// generated text trimmed of surrounding whitespace.
func (c *Client) GeneratePost(ctx context.Context, prompt string) (string, error) {
	client := openaigo.NewClient(c.opts...)

	resp, err := client.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage(systemPrompt),
			openaigo.UserMessage(prompt),
		},
		MaxTokens:   openaigo.Int(maxTokens),
		Temperature: openaigo.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("creating chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
