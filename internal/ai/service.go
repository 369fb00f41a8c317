package ai

import (
	"context"
	"fmt"

	"recruitflow/internal/config"
	"recruitflow/internal/errors"
)

// Service handles text generation for one pipeline operation
type Service struct {
	Generator TextGenerator // Exported for access from server package
	config    *config.OperationAIConfig
	logger    *errors.Logger
}

// NewService creates a new AI service instance with configuration for a
// specific operation. Returns (nil, nil) when no API key is configured: the
// pipeline treats a nil service as "capability absent" and uses deterministic
// fallbacks everywhere.
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		logger.Warn("No AI API key configured, falling back to deterministic templates",
			"operation_type", operationType)
		return nil, nil
	}

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries)

	var generator TextGenerator
	var err error

	switch cfg.Provider {
	case "gemini":
		generator, err = NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Generator: generator,
		config:    cfg,
		logger:    logger,
	}, nil
}

// Generate forwards to the underlying generator. A nil service reports the
// capability as unavailable so callers can fall back.
func (s *Service) Generate(ctx context.Context, prompt string) (string, *TokenUsage, error) {
	if s == nil || s.Generator == nil {
		return "", nil, errors.NewAIError(errors.ErrCodeAIUnavailable,
			"Text generation capability is not configured", nil)
	}
	return s.Generator.Generate(ctx, prompt)
}

// Available reports whether a real generator is wired in.
func (s *Service) Available() bool {
	return s != nil && s.Generator != nil
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	if s == nil || s.Generator == nil {
		return &ModelInfo{Available: false, Error: "not configured"}
	}
	return s.Generator.GetModelInfo(ctx)
}

// Close releases provider resources.
func (s *Service) Close() error {
	if s == nil || s.Generator == nil {
		return nil
	}
	return s.Generator.Close()
}
