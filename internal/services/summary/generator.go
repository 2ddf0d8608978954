package summary

import "context"

// Provider names accepted in configuration
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

// Generator turns a prompt into free text
type Generator interface {
	// Name identifies the provider in logs and errors
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
