package services

import (
	"context"
	"fmt"

	"skinner/resume-feedback/internal/config"
)

// LLMService sends one system + user prompt pair to a chat model and
// returns the generated text.
type LLMService interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewLLMService builds the backend selected by cfg.Provider.
func NewLLMService(cfg config.LLMConfig) (LLMService, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIService(OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.Timeout,
		}), nil
	case config.ProviderGemini:
		return NewGeminiService(GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
			Timeout: cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
}
