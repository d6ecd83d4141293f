package llm

import (
	"context"
	"errors"
)

// ErrUnknownModel is returned for a selector no registered client serves.
var ErrUnknownModel = errors.New("unknown model selector")

// ChatMessage represents a chat message
type ChatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// ChatRequest represents a chat completion request
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse represents a chat completion response
type ChatResponse struct {
	Message    string `json:"message"`
	TokensUsed int    `json:"tokens_used"`
}

// Client is the interface for AI backend clients (OpenAI, Anthropic, Gemini)
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// Registry maps a prompt's model selector to the client that serves it.
type Registry struct {
	clients map[string]Client
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]Client)}
}

// Register binds a selector (e.g. "chatgpt") to a client
func (r *Registry) Register(selector string, c Client) {
	r.clients[selector] = c
}

// Get returns the client for a selector
func (r *Registry) Get(selector string) (Client, error) {
	c, ok := r.clients[selector]
	if !ok {
		return nil, ErrUnknownModel
	}
	return c, nil
}

// Selectors lists the registered model selectors
func (r *Registry) Selectors() []string {
	out := make([]string, 0, len(r.clients))
	for k := range r.clients {
		out = append(out, k)
	}
	return out
}

// Ensure implementations satisfy the interface
var _ Client = (*OpenAIClient)(nil)
var _ Client = (*AnthropicClient)(nil)
var _ Client = (*GeminiClient)(nil)
