package models

// CheckoutResponse represents a checkout session response
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// PricingTier represents a pricing tier with details
type PricingTier struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	PromptLimit int      `json:"prompt_limit"` // -1 means unlimited
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// PricingResponse represents pricing information
type PricingResponse struct {
	Tiers []PricingTier `json:"tiers"`
}
