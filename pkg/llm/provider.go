package llm

import (
	"context"
)

// Provider defines the contract for any generative-text backend.
type Provider interface {
	// Generate sends a single prompt to the model and returns the response text.
	Generate(ctx context.Context, prompt string) (string, error)
}
