package summary

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/killallgit/secondlife-api/internal/models"
	"github.com/rs/zerolog"
)

// Summarizer is the contract consumed by the summarize handler
type Summarizer interface {
	Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResponse, error)
}

// Service produces place summaries. A nil generator is the unconfigured state.
type Service struct {
	generator Generator
	timeout   time.Duration
	logger    *zerolog.Logger
}

// NewService creates a summary service; generator may be nil
func NewService(generator Generator, timeout time.Duration, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// Configured reports whether a provider is available
func (s *Service) Configured() bool {
	return s.generator != nil
}

// Summarize validates the request, renders the prompt and returns the
// provider text verbatim. Nothing is cached or retried.
func (s *Service) Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, models.NewValidationError("name", "Missing store name")
	}
	if !s.Configured() {
		return nil, models.NewConfigurationError("summary.api_key", "Summary provider not configured: set GEMINI_API_KEY or ANTHROPIC_API_KEY")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	provider := s.generator.Name()
	s.logger.Info().Str("provider", provider).Str("name", req.Name).Msg("generating summary")

	start := time.Now()
	text, err := s.generator.Generate(ctx, BuildPrompt(req))
	if err != nil {
		s.logger.Error().Err(err).Str("provider", provider).Str("name", req.Name).Msg("summary generation failed")
		return nil, models.NewUpstreamError(provider, err)
	}
	if text == "" {
		s.logger.Error().Str("provider", provider).Str("name", req.Name).Msg("summary provider returned no text")
		return nil, models.NewUpstreamError(provider, errors.New("no response generated"))
	}

	s.logger.Info().
		Str("provider", provider).
		Str("name", req.Name).
		Dur("elapsed", time.Since(start)).
		Msg("summary generated successfully")

	return &models.SummaryResponse{Name: req.Name, Summary: text}, nil
}
