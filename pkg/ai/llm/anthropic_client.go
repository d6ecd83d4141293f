package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const anthropicDefaultBaseURL = "https://api.anthropic.com/v1"

// AnthropicClient calls the Anthropic Messages API directly; there is no
// official Go SDK, so this speaks the REST protocol.
type AnthropicClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	logger     *log.Logger
}

// AnthropicConfig for Anthropic client
type AnthropicConfig struct {
	APIKey    string
	BaseURL   string // default: https://api.anthropic.com/v1
	Model     string // default: claude-3-5-haiku-latest
	MaxTokens int    // default: 1024
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(cfg AnthropicConfig, logger *log.Logger) *AnthropicClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = anthropicDefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "claude-3-5-haiku-latest"
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1024
	}
	if logger == nil {
		logger = log.Default()
	}

	return &AnthropicClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		logger:     logger,
	}
}

type anthropicMessagesRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
	Messages  []ChatMessage `json:"messages"`
}

type anthropicMessagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Chat sends a messages request to Anthropic
func (c *AnthropicClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	c.logger.Printf("🤖 Anthropic Chat: %d messages, model: %s", len(req.Messages), c.model)

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	// The Messages API takes the system prompt as a top-level field.
	body := anthropicMessagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
	}
	for _, msg := range req.Messages {
		if msg.Role == "system" {
			body.System = msg.Content
			continue
		}
		body.Messages = append(body.Messages, msg)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed anthropicMessagesResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("anthropic returned %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return nil, fmt.Errorf("anthropic returned status %d", resp.StatusCode)
	}

	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return nil, fmt.Errorf("anthropic returned no content")
	}

	return &ChatResponse{
		Message:    parsed.Content[0].Text,
		TokensUsed: parsed.Usage.InputTokens + parsed.Usage.OutputTokens,
	}, nil
}
