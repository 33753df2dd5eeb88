package llm

import (
	"context"
	"fmt"
)

// LLMProvider generates a completion for a system prompt and a user message
type LLMProvider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetProviderName() string
}

// ProviderType untuk factory
type ProviderType string

const (
	ProviderNone   ProviderType = ""
	ProviderOpenAI ProviderType = "openai"
	ProviderGroq   ProviderType = "groq"
)

// ProviderConfig untuk create provider
type ProviderConfig struct {
	Type ProviderType

	OpenAIKey string
	GroqKey   string

	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider builds the configured provider. ProviderNone returns nil, nil.
func NewProvider(cfg ProviderConfig) (LLMProvider, error) {
	switch cfg.Type {
	case ProviderNone:
		return nil, nil

	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required")
		}
		return NewGroqProvider(cfg.GroqKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}
