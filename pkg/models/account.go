package models

// SyncAccountRequest represents the account sync call made after login.
// Email is only consulted when the account does not exist yet.
type SyncAccountRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

// AccountInfo represents account information in responses
type AccountInfo struct {
	ID                 int    `json:"id"`
	Email              string `json:"email"`
	AuthProviderID     string `json:"auth_provider_id"`
	PlanTier           string `json:"plan_tier"`
	SubscriptionStatus string `json:"subscription_status,omitempty"`
	CreatedAt          string `json:"created_at"`
}

// UsageResponse represents saved-prompt quota usage
type UsageResponse struct {
	PromptCount int    `json:"prompt_count"`
	PromptLimit int    `json:"prompt_limit"` // -1 means unlimited
	Remaining   int    `json:"remaining"`    // -1 means unlimited
	Tier        string `json:"tier"`
}
