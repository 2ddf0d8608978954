package summary

import (
	"context"
	"fmt"
)

// GeneratorConfig selects a provider and carries its credentials
type GeneratorConfig struct {
	Provider        string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	ClaudeModel     string
	MaxTokens       int
}

// NewGenerator builds the configured provider. A missing key for the selected
// provider returns (nil, nil) so the service starts unconfigured.
func NewGenerator(ctx context.Context, cfg GeneratorConfig) (Generator, error) {
	switch cfg.Provider {
	case "", ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		gen, err := NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case ProviderClaude:
		if cfg.AnthropicAPIKey == "" {
			return nil, nil
		}
		gen, err := NewClaudeGenerator(cfg.AnthropicAPIKey, cfg.ClaudeModel, cfg.MaxTokens)
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("unsupported summary provider %q", cfg.Provider)
	}
}
