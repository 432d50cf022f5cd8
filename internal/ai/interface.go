package ai

import (
	"context"
)

// Schema is a JSON-schema fragment embedded verbatim in the model
// instructions when a structured response is required.
type Schema map[string]any

// Options control how a single generation call is framed.
type Options struct {
	// UseExternalContext asks the model to draw on current real-world
	// knowledge instead of relying only on its internal training data.
	UseExternalContext bool
}

// Provider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.)
// and for substituting a stub in tests.
type Provider interface {
	// GenerateText sends the prompt as-is and returns the raw text response.
	GenerateText(ctx context.Context, prompt string, opts Options) (string, error)

	// GenerateJSON instructs the model to respond only with JSON conforming
	// to schema, strips any markdown code fences from the response, and
	// unmarshals the remainder into out.
	GenerateJSON(ctx context.Context, prompt string, schema Schema, out any, opts Options) error
}
