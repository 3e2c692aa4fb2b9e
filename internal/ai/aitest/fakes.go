// Package aitest provides in-memory ai capability fakes for tests.
package aitest

import (
	"context"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai"
)

// Embedder returns a fixed vector and counts calls.
type Embedder struct {
	Vec   []float32
	Err   error
	Calls int
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.Calls++
	if e.Err != nil {
		return nil, e.Err
	}
	if e.Vec == nil {
		return []float32{0.1, 0.2, 0.3}, nil
	}
	return e.Vec, nil
}

// Generator emits Chunks in order, then returns Err (if any). The last
// request is recorded for prompt assertions.
type Generator struct {
	Chunks  []string
	Err     error
	Calls   int
	LastReq ai.GenerationRequest
}

func (g *Generator) Stream(ctx context.Context, req ai.GenerationRequest, onDelta func(ctx context.Context, chunk []byte) error) error {
	g.Calls++
	g.LastReq = req
	for _, c := range g.Chunks {
		if err := onDelta(ctx, []byte(c)); err != nil {
			return err
		}
	}
	return g.Err
}

// Classifier returns a canned response.
type Classifier struct {
	Response         string
	Err              error
	Calls            int
	LastInstructions string
	LastInput        string
}

func (c *Classifier) Complete(ctx context.Context, instructions, input string) (string, error) {
	c.Calls++
	c.LastInstructions = instructions
	c.LastInput = input
	if c.Err != nil {
		return "", c.Err
	}
	return c.Response, nil
}
