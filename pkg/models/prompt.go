package models

// CreatePromptRequest represents a request to save a prompt
type CreatePromptRequest struct {
	Title     string   `json:"title" validate:"omitempty,max=200"`
	Body      string   `json:"body" validate:"required"`
	ModelUsed string   `json:"model_used" validate:"required"`
	Tags      []string `json:"tags" validate:"omitempty,dive,max=50"`
}

// PromptResponse represents a saved prompt in responses
type PromptResponse struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	ModelUsed string   `json:"model_used"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}

// PromptListResponse represents a prompt listing with quota context
type PromptListResponse struct {
	Prompts     []PromptResponse `json:"prompts"`
	PromptCount int              `json:"prompt_count"`
	PromptLimit int              `json:"prompt_limit"` // -1 means unlimited
	PlanTier    string           `json:"plan_tier"`
}

// TestPromptRequest represents a request to run a prompt against an AI backend
type TestPromptRequest struct {
	Body      string `json:"body" validate:"required"`
	ModelUsed string `json:"model_used" validate:"required"`
}

// TestPromptResponse represents the AI backend's reply
type TestPromptResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}
