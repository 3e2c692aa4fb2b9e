// Package openai implements the ai capabilities against any
// OpenAI-compatible endpoint via langchaingo.
package openai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai"
)

// maxEmbedInputChars is the documented maximum input length of the
// embedding capability; longer inputs are truncated, not rejected.
const maxEmbedInputChars = 8000

// Config selects the endpoint and the three models used by the service.
type Config struct {
	BaseURL         string
	APIKey          string
	EmbedModel      string
	ClassifierModel string
	AnswerModel     string
}

// Provider implements ai.Embedder, ai.Generator and ai.Classifier.
type Provider struct {
	answer     llms.Model
	classifier llms.Model
	embedder   embeddings.Embedder
}

var (
	_ ai.Embedder   = (*Provider)(nil)
	_ ai.Generator  = (*Provider)(nil)
	_ ai.Classifier = (*Provider)(nil)
)

// NewProvider constructs a Provider for the configured endpoint.
func NewProvider(cfg Config) (*Provider, error) {
	token := cfg.APIKey
	if token == "" {
		// Local OpenAI-compatible servers accept any non-empty token.
		token = "none"
	}

	answer, err := lcopenai.New(
		lcopenai.WithBaseURL(cfg.BaseURL),
		lcopenai.WithToken(token),
		lcopenai.WithModel(cfg.AnswerModel),
	)
	if err != nil {
		return nil, fmt.Errorf("answer model client: %w", err)
	}

	classifier, err := lcopenai.New(
		lcopenai.WithBaseURL(cfg.BaseURL),
		lcopenai.WithToken(token),
		lcopenai.WithModel(cfg.ClassifierModel),
	)
	if err != nil {
		return nil, fmt.Errorf("classifier model client: %w", err)
	}

	embClient, err := lcopenai.New(
		lcopenai.WithBaseURL(cfg.BaseURL),
		lcopenai.WithToken(token),
		lcopenai.WithEmbeddingModel(cfg.EmbedModel),
	)
	if err != nil {
		return nil, fmt.Errorf("embedding client: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(embClient, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}

	return &Provider{answer: answer, classifier: classifier, embedder: embedder}, nil
}

// Embed generates a vector for text, truncated to the capability's maximum
// input length.
func (p *Provider) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}
	return p.embedder.EmbedQuery(ctx, truncate(text, maxEmbedInputChars))
}

// Stream runs answer generation, forwarding each fragment to onDelta as soon
// as the model produces it.
func (p *Provider) Stream(ctx context.Context, req ai.GenerationRequest, onDelta func(ctx context.Context, chunk []byte) error) error {
	content := []llms.MessageContent{
		{Role: llms.ChatMessageTypeSystem, Parts: []llms.ContentPart{llms.TextPart(req.Instructions)}},
		{Role: llms.ChatMessageTypeHuman, Parts: []llms.ContentPart{llms.TextPart(req.Content)}},
	}
	_, err := p.answer.GenerateContent(ctx, content,
		llms.WithTemperature(req.Temperature),
		llms.WithStreamingFunc(onDelta),
	)
	return err
}

// Complete runs a deterministic JSON-mode completion and returns the raw
// model content.
func (p *Provider) Complete(ctx context.Context, instructions, input string) (string, error) {
	content := []llms.MessageContent{
		{Role: llms.ChatMessageTypeSystem, Parts: []llms.ContentPart{llms.TextPart(instructions)}},
		{Role: llms.ChatMessageTypeHuman, Parts: []llms.ContentPart{llms.TextPart(input)}},
	}
	resp, err := p.classifier.GenerateContent(ctx, content,
		llms.WithTemperature(0),
		llms.WithJSONMode(),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Content, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
