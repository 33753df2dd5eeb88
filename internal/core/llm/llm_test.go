package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(ProviderConfig{Type: ProviderNone})
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = NewProvider(ProviderConfig{Type: ProviderOpenAI})
	assert.Error(t, err)

	_, err = NewProvider(ProviderConfig{Type: ProviderGroq})
	assert.Error(t, err)

	_, err = NewProvider(ProviderConfig{Type: "gemini"})
	assert.Error(t, err)

	p, err = NewProvider(ProviderConfig{Type: ProviderGroq, GroqKey: "gsk_test"})
	require.NoError(t, err)
	assert.Equal(t, "Groq", p.GetProviderName())
}

func TestChatProviderGenerateResponse(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Revenue is up."},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	p := NewChatProviderWithBaseURL("Test", "test-key", server.URL, "test-model")
	text, err := p.GenerateResponse(context.Background(), "system", "facts")
	require.NoError(t, err)
	assert.Equal(t, "Revenue is up.", text)

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "facts", got.Messages[1].Content)
}

func TestChatProviderNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	_, err := NewChatProviderWithBaseURL("Test", "k", server.URL, "m").GenerateResponse(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "no response from Test")
}

func TestServiceDisabled(t *testing.T) {
	svc := NewService(nil)
	assert.False(t, svc.Enabled())
	assert.Equal(t, "none", svc.GetProviderName())

	var nilSvc *Service
	assert.False(t, nilSvc.Enabled())
}
