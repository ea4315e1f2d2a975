package application

import (
	"fmt"

	"github.com/postcraft/social-post-api/internal/openai"
	"github.com/postcraft/social-post-api/internal/repository"
	"github.com/postcraft/social-post-api/internal/service"
	"github.com/postcraft/social-post-api/internal/transport/handler"
	"github.com/postcraft/social-post-api/internal/twitter"
)

// Application represents the application with all business logic components
type Application struct {
	Config          *Config
	GenerateHandler *handler.Generate
	PublishHandler  *handler.Publish
	HealthHandler   *handler.Health
}

// New creates a new application instance with all dependencies
func New() (*Application, error) {
	// Load configuration
	cfg, err := Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Create collaborator clients
	openaiClient := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	twitterClient, err := twitter.NewClient(twitter.Credentials{
		APIKey:            cfg.TwitterAPIKey,
		APIKeySecret:      cfg.TwitterAPIKeySecret,
		AccessToken:       cfg.TwitterAccessToken,
		AccessTokenSecret: cfg.TwitterAccessTokenSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("creating twitter client: %w", err)
	}

	// Create repositories
	generatorRepo := repository.NewGeneratorRepository(openaiClient)
	twitterRepo := repository.NewTwitterRepository(twitterClient)

	// Create services (business logic)
	generateService := service.NewGenerate(generatorRepo)
	publishService := service.NewPublish(twitterRepo)

	// Create handlers (HTTP layer)
	generateHandler := handler.NewGenerate(generateService)
	publishHandler := handler.NewPublish(publishService)
	healthHandler := handler.NewHealth()

	return &Application{
		Config:          cfg,
		GenerateHandler: generateHandler,
		PublishHandler:  publishHandler,
		HealthHandler:   healthHandler,
	}, nil
}
