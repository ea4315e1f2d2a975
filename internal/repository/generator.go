package repository

import (
	"context"

	"github.com/postcraft/social-post-api/internal/openai"
)

// GeneratorRepository abstracts the text-generation collaborator.
type GeneratorRepository interface {
	GeneratePost(ctx context.Context, prompt string) (string, error)
}

type generatorRepository struct {
	client *openai.Client
}

func NewGeneratorRepository(client *openai.Client) GeneratorRepository {
	return &generatorRepository{
		client: client,
	}
}

func (g *generatorRepository) GeneratePost(ctx context.Context, prompt string) (string, error) {
	return g.client.GeneratePost(ctx, prompt)
}
