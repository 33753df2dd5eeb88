package llm

import "context"

// Service wraps an optional provider; without one, Enabled is false
type Service struct {
	provider LLMProvider
}

// NewService creates a service around provider, which may be nil
func NewService(provider LLMProvider) *Service {
	return &Service{provider: provider}
}

// Enabled reports whether a provider is configured
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// GenerateResponse generates AI response
func (s *Service) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return s.provider.GenerateResponse(ctx, systemPrompt, userMessage)
}

// GetProviderName returns current provider name, or "none"
func (s *Service) GetProviderName() string {
	if !s.Enabled() {
		return "none"
	}
	return s.provider.GetProviderName()
}
