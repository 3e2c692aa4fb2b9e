package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the knowledge search service.
// Environment variables are parsed from the SEARCH_SERVICE_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Postgres Configuration (read-only relational store)
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Vector index (Weaviate), host:port without scheme
	WeaviateURL string `envconfig:"WEAVIATE_URL" default:"localhost:8081"`

	// OpenAI-compatible endpoint for embeddings, classification and answers
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY" default:""`

	EmbedModel      string `envconfig:"EMBED_MODEL" default:"text-embedding-3-small"`
	ClassifierModel string `envconfig:"CLASSIFIER_MODEL" default:"gpt-4o-mini"`
	AnswerModel     string `envconfig:"ANSWER_MODEL" default:"gpt-4o"`

	// Retrieval caps per scope
	KnowledgeTopK int `envconfig:"KNOWLEDGE_TOP_K" default:"8"`
	HistoryTopK   int `envconfig:"HISTORY_TOP_K" default:"6"`

	// Bounded timeout applied to each remote call (classification, embedding,
	// index query, metadata lookups). Answer generation streams under the
	// request context instead.
	RemoteTimeoutSeconds int `envconfig:"REMOTE_TIMEOUT_SECONDS" default:"30"`
}

// Validate checks fields that have no safe fallback.
func (c *Config) Validate() error {
	if c.KnowledgeTopK <= 0 {
		return fmt.Errorf("KNOWLEDGE_TOP_K must be positive, got %d", c.KnowledgeTopK)
	}
	if c.HistoryTopK <= 0 {
		return fmt.Errorf("HISTORY_TOP_K must be positive, got %d", c.HistoryTopK)
	}
	if c.RemoteTimeoutSeconds <= 0 {
		return fmt.Errorf("REMOTE_TIMEOUT_SECONDS must be positive, got %d", c.RemoteTimeoutSeconds)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: SEARCH_SERVICE_HTTP_PORT, SEARCH_SERVICE_POSTGRES_DSN.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SEARCH_SERVICE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewForTesting creates a config suitable for unit tests.
func NewForTesting() *Config {
	return &Config{
		Environment:          EnvTesting,
		HTTPPort:             8080,
		WeaviateURL:          "localhost:8082",
		OpenAIBaseURL:        "http://localhost:11434/v1",
		EmbedModel:           "text-embedding-3-small",
		ClassifierModel:      "gpt-4o-mini",
		AnswerModel:          "gpt-4o",
		KnowledgeTopK:        8,
		HistoryTopK:          6,
		RemoteTimeoutSeconds: 30,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
