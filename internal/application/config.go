package application

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// OpenAI API settings
	OpenAIAPIKey  string `json:"-"` // Don't expose in JSON
	OpenAIModel   string `json:"openai_model"`
	OpenAIBaseURL string `json:"openai_base_url,omitempty"`

	// Twitter API settings
	TwitterAPIKey            string `json:"-"` // Don't expose in JSON
	TwitterAPIKeySecret      string `json:"-"` // Don't expose in JSON
	TwitterAccessToken       string `json:"-"` // Don't expose in JSON
	TwitterAccessTokenSecret string `json:"-"` // Don't expose in JSON
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:                     getEnvOrDefault("PORT", "8080"),
		Host:                     getEnvOrDefault("HOST", "0.0.0.0"),
		OpenAIAPIKey:             getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIModel:              getEnvOrDefault("OPENAI_MODEL", "gpt-4"),
		OpenAIBaseURL:            getEnvOrDefault("OPENAI_BASE_URL", ""),
		TwitterAPIKey:            getEnvOrDefault("TWITTER_API_KEY", ""),
		TwitterAPIKeySecret:      getEnvOrDefault("TWITTER_API_KEY_SECRET", ""),
		TwitterAccessToken:       getEnvOrDefault("TWITTER_ACCESS_TOKEN", ""),
		TwitterAccessTokenSecret: getEnvOrDefault("TWITTER_ACCESS_TOKEN_SECRET", ""),
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.OpenAIAPIKey == "" {
		return &ConfigError{Field: "OPENAI_API_KEY", Message: "OpenAI API key is required"}
	}
	if c.TwitterAPIKey == "" {
		return &ConfigError{Field: "TWITTER_API_KEY", Message: "Twitter API key is required"}
	}
	if c.TwitterAPIKeySecret == "" {
		return &ConfigError{Field: "TWITTER_API_KEY_SECRET", Message: "Twitter API key secret is required"}
	}
	if c.TwitterAccessToken == "" {
		return &ConfigError{Field: "TWITTER_ACCESS_TOKEN", Message: "Twitter access token is required"}
	}
	if c.TwitterAccessTokenSecret == "" {
		return &ConfigError{Field: "TWITTER_ACCESS_TOKEN_SECRET", Message: "Twitter access token secret is required"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
