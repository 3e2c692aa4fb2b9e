// Package ai defines the embedding, generation and classification
// capabilities consumed by the search core. Implementations live under
// ai/<provider>/.
package ai

import "context"

// Embedder produces a fixed-dimension vector for text. Implementations
// truncate inputs beyond their documented maximum length.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// GenerationRequest carries one answer-generation call.
type GenerationRequest struct {
	Instructions string
	Content      string
	Temperature  float64
}

// Generator streams text fragments for a generation request. onDelta is
// invoked in production order; returning an error stops generation.
type Generator interface {
	Stream(ctx context.Context, req GenerationRequest, onDelta func(ctx context.Context, chunk []byte) error) error
}

// Classifier runs a zero-temperature structured-output completion and
// returns the raw model content, expected to be a JSON object.
type Classifier interface {
	Complete(ctx context.Context, instructions, input string) (string, error)
}
