package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// ChatProvider talks to any OpenAI-compatible chat completion API
type ChatProvider struct {
	name        string
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewOpenAIProvider(apiKey string, model string, temperature float32, maxTokens int) *ChatProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return newChatProvider("OpenAI", openai.DefaultConfig(apiKey), model, temperature, maxTokens)
}

// NewGroqProvider uses Groq's OpenAI-compatible endpoint
func NewGroqProvider(apiKey string, model string, temperature float32, maxTokens int) *ChatProvider {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	return newChatProvider("Groq", config, model, temperature, maxTokens)
}

// NewChatProviderWithBaseURL points at an arbitrary compatible endpoint (self-hosted gateways, tests)
func NewChatProviderWithBaseURL(name, apiKey, baseURL, model string) *ChatProvider {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return newChatProvider(name, config, model, 0, 0)
}

func newChatProvider(name string, config openai.ClientConfig, model string, temperature float32, maxTokens int) *ChatProvider {
	if temperature == 0 {
		temperature = 0.4
	}
	if maxTokens == 0 {
		maxTokens = 300
	}
	return &ChatProvider{
		name:        name,
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *ChatProvider) GetProviderName() string {
	return p.name
}

func (p *ChatProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", p.name)
	}

	return resp.Choices[0].Message.Content, nil
}
