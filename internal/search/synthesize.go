package search

import (
	"context"
	"fmt"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai"
)

// Synthesizer streams model-generated answers, forwarding each non-empty
// delta to the caller as it arrives.
type Synthesizer struct {
	generator ai.Generator
}

func NewSynthesizer(gen ai.Generator) *Synthesizer {
	return &Synthesizer{generator: gen}
}

func (s *Synthesizer) stream(ctx context.Context, req ai.GenerationRequest, emit func(string) error) error {
	return s.generator.Stream(ctx, req, func(ctx context.Context, delta []byte) error {
		if len(delta) == 0 {
			return nil
		}
		return emit(string(delta))
	})
}

// StreamKnowledge answers from assigned training materials only.
func (s *Synthesizer) StreamKnowledge(ctx context.Context, query, contextBlock string, emit func(string) error) error {
	return s.stream(ctx, ai.GenerationRequest{
		Instructions: knowledgeInstructions,
		Content:      fmt.Sprintf("Question: %s\n\nSource Materials:\n%s", query, contextBlock),
		Temperature:  groundedTemperature,
	}, emit)
}

// StreamHistory answers from the user's own submissions and feedback.
func (s *Synthesizer) StreamHistory(ctx context.Context, query, contextBlock string, emit func(string) error) error {
	return s.stream(ctx, ai.GenerationRequest{
		Instructions: historyInstructions,
		Content:      fmt.Sprintf("Question: %s\n\nYour Submissions & Feedback:\n%s", query, contextBlock),
		Temperature:  groundedTemperature,
	}, emit)
}

// StreamFallback answers a general professional question without retrieval
// context.
func (s *Synthesizer) StreamFallback(ctx context.Context, query string, emit func(string) error) error {
	return s.stream(ctx, ai.GenerationRequest{
		Instructions: fallbackInstructions,
		Content:      query,
		Temperature:  fallbackTemperature,
	}, emit)
}
