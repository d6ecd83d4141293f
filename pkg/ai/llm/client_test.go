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

type stubClient struct{}

func (s *stubClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	return &ChatResponse{Message: "stub"}, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("chatgpt")
	assert.ErrorIs(t, err, ErrUnknownModel)

	r.Register("chatgpt", &stubClient{})

	c, err := r.Get("chatgpt")
	require.NoError(t, err)
	resp, err := c.Chat(context.Background(), ChatRequest{})
	require.NoError(t, err)
	assert.Equal(t, "stub", resp.Message)

	assert.ElementsMatch(t, []string{"chatgpt"}, r.Selectors())
}

func TestAnthropicClient_Chat(t *testing.T) {
	var gotBody anthropicMessagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "hello from claude"}},
			"usage":   map[string]int{"input_tokens": 10, "output_tokens": 5},
		})
	}))
	defer server.Close()

	c := NewAnthropicClient(AnthropicConfig{APIKey: "key-123", BaseURL: server.URL}, nil)

	resp, err := c.Chat(context.Background(), ChatRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hi"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello from claude", resp.Message)
	assert.Equal(t, 15, resp.TokensUsed)

	// The system message is lifted out of the message list
	assert.Equal(t, "be brief", gotBody.System)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
}

func TestAnthropicClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"type": "invalid_request_error", "message": "bad prompt"},
		})
	}))
	defer server.Close()

	c := NewAnthropicClient(AnthropicConfig{APIKey: "key-123", BaseURL: server.URL}, nil)

	_, err := c.Chat(context.Background(), ChatRequest{
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad prompt")
}

func TestGeminiClient_Chat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "generateContent")
		assert.Equal(t, "key-456", r.URL.Query().Get("key"))

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"role": "model", "parts": []map[string]string{{"text": "hello from gemini"}}}},
			},
			"usageMetadata": map[string]int{"totalTokenCount": 12},
		})
	}))
	defer server.Close()

	c := NewGeminiClient(GeminiConfig{APIKey: "key-456", BaseURL: server.URL}, nil)

	resp, err := c.Chat(context.Background(), ChatRequest{
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello from gemini", resp.Message)
	assert.Equal(t, 12, resp.TokensUsed)
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	c := NewGeminiClient(GeminiConfig{APIKey: "key-456", BaseURL: server.URL}, nil)

	_, err := c.Chat(context.Background(), ChatRequest{
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})
	assert.Error(t, err)
}
