package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	stripesubscription "github.com/stripe/stripe-go/v76/subscription"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/prompthub/prompthub/ent"
	entaccount "github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/pkg/account"
	"github.com/prompthub/prompthub/pkg/metrics"
	"github.com/prompthub/prompthub/pkg/models"
)

// metadataAccountKey is the checkout/customer metadata key carrying the local
// account id, so the asynchronous completion event can be correlated back
// without relying on email matching.
const metadataAccountKey = "local_account_id"

// ErrAlreadySubscribed is returned when a pro account starts another checkout.
var ErrAlreadySubscribed = errors.New("account is already on the Pro plan")

// ErrInvalidSignature is returned when a webhook payload fails verification.
var ErrInvalidSignature = errors.New("webhook signature verification failed")

// EmailSender abstracts email sending for billing notifications.
type EmailSender interface {
	SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PricePro      string
	SuccessURL    string
	CancelURL     string
	BaseURL       string
}

// Service reconciles local Account entitlement state with Stripe. It is the
// only writer of plan_tier, subscription_status and the billing linkage
// fields once an account exists.
type Service struct {
	db       *ent.Client
	accounts *account.Service
	config   *StripeConfig
	email    EmailSender
	metrics  *metrics.Metrics
}

// NewService creates a new billing service
func NewService(db *ent.Client, accounts *account.Service, config *StripeConfig) *Service {
	// Set Stripe API key
	stripe.Key = config.SecretKey

	return &Service{
		db:       db,
		accounts: accounts,
		config:   config,
	}
}

// SetEmailSender sets the email sender for billing notifications.
func (s *Service) SetEmailSender(e EmailSender) {
	s.email = e
}

// SetMetrics sets the metrics collector for billing events.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// CreateCheckoutSession starts the upgrade flow for an account. A Stripe
// customer is created and persisted on the account before the session is
// requested, so a retry of this operation never mints a duplicate customer.
func (s *Service) CreateCheckoutSession(ctx context.Context, accountID int) (*models.CheckoutResponse, error) {
	acc, err := s.db.Account.Get(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if acc.PlanTier == entaccount.PlanTierPro {
		return nil, ErrAlreadySubscribed
	}

	var customerID string
	if acc.StripeCustomerID != nil && *acc.StripeCustomerID != "" {
		customerID = *acc.StripeCustomerID
	} else {
		params := &stripe.CustomerParams{
			Email: stripe.String(acc.Email),
			Metadata: map[string]string{
				metadataAccountKey: strconv.Itoa(acc.ID),
			},
		}
		cust, err := customer.New(params)
		if err != nil {
			return nil, fmt.Errorf("failed to create customer: %w", err)
		}
		customerID = cust.ID

		// Persist the linkage before touching the session, so a failed
		// session attempt can be retried against the same customer.
		_, err = s.db.Account.UpdateOneID(acc.ID).
			SetStripeCustomerID(customerID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to save customer ID: %w", err)
		}
		s.accounts.Invalidate(ctx, acc.AuthProviderID)
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.config.PricePro),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata: map[string]string{
			metadataAccountKey: strconv.Itoa(acc.ID),
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	log.Printf("💳 Checkout session created: account_id=%d, session=%s", acc.ID, sess.ID)
	if s.metrics != nil {
		s.metrics.CheckoutSessions.Inc()
	}

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// HandleWebhook verifies and applies a Stripe webhook event. A nil return
// means the event must be acknowledged, including "no matching account"
// drops; only persistence failures propagate so Stripe redelivers.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	log.Printf("📨 Stripe webhook received: %s (%s)", event.Type, event.ID)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.updated", "customer.subscription.deleted":
		return s.handleSubscriptionChange(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
		s.countWebhook(string(event.Type), "ignored")
	}

	return nil
}

// handleCheckoutCompleted applies a checkout.session.completed event.
// Every write is a full-state overwrite, so redelivery is harmless.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if sess.Mode != stripe.CheckoutSessionModeSubscription || sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		log.Printf("⚠️  Ignoring checkout session %s: mode=%s, payment_status=%s", sess.ID, sess.Mode, sess.PaymentStatus)
		s.countWebhook(string(event.Type), "ignored")
		return nil
	}

	var subscriptionID string
	if sess.Subscription != nil {
		subscriptionID = sess.Subscription.ID
	}
	var customerID string
	if sess.Customer != nil {
		customerID = sess.Customer.ID
	}

	acc := s.resolveCheckoutAccount(ctx, &sess, customerID)
	if acc == nil {
		// Accepted lossy edge case: nothing to update, but the event must
		// still be acknowledged or Stripe retries forever.
		log.Printf("⚠️  No account found for checkout session %s (metadata=%v, customer=%s)", sess.ID, sess.Metadata, customerID)
		s.countWebhook(string(event.Type), "dropped")
		return nil
	}

	upd := s.db.Account.UpdateOneID(acc.ID).
		SetPlanTier(entaccount.PlanTierPro).
		SetSubscriptionStatus("active")
	if subscriptionID != "" {
		upd = upd.SetStripeSubscriptionID(subscriptionID)
	}
	if customerID != "" && (acc.StripeCustomerID == nil || *acc.StripeCustomerID == "") {
		upd = upd.SetStripeCustomerID(customerID)
	}

	if _, err := upd.Save(ctx); err != nil {
		s.countWebhook(string(event.Type), "error")
		return fmt.Errorf("failed to upgrade account %d: %w", acc.ID, err)
	}

	log.Printf("✅ Account %d upgraded to Pro via checkout.session.completed", acc.ID)
	s.accounts.Invalidate(ctx, acc.AuthProviderID)
	s.countWebhook(string(event.Type), "applied")

	if s.email != nil {
		subject, html, plain := buildUpgradeConfirmedEmail(s.config.BaseURL)
		if err := s.email.SendEmail(acc.Email, acc.Email, subject, html, plain); err != nil {
			log.Printf("⚠️  Failed to send upgrade email to %s: %v", acc.Email, err)
		}
	}

	return nil
}

// resolveCheckoutAccount finds the account a completed checkout belongs to:
// first by the local id embedded in session metadata, then by the customer id
// already stored on an account.
func (s *Service) resolveCheckoutAccount(ctx context.Context, sess *stripe.CheckoutSession, customerID string) *ent.Account {
	if idStr, ok := sess.Metadata[metadataAccountKey]; ok {
		if id, err := strconv.Atoi(idStr); err == nil {
			acc, err := s.db.Account.Get(ctx, id)
			if err == nil {
				return acc
			}
			log.Printf("⚠️  Stale %s=%s in session %s: %v", metadataAccountKey, idStr, sess.ID, err)
		}
	}

	if customerID == "" {
		return nil
	}

	acc, err := s.db.Account.Query().
		Where(entaccount.StripeCustomerIDEQ(customerID)).
		Only(ctx)
	if err != nil {
		return nil
	}
	return acc
}

// handleSubscriptionChange applies customer.subscription.updated/deleted.
// Matching is by stored subscription id only; these events carry no local id.
func (s *Service) handleSubscriptionChange(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	status := string(sub.Status)
	acc, err := s.db.Account.Query().
		Where(entaccount.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("⚠️  No account found for subscription %s during %s", sub.ID, event.Type)
			s.countWebhook(string(event.Type), "dropped")
			return nil
		}
		s.countWebhook(string(event.Type), "error")
		return fmt.Errorf("failed to find account for subscription %s: %w", sub.ID, err)
	}

	if err := s.applySubscriptionStatus(ctx, acc, status); err != nil {
		s.countWebhook(string(event.Type), "error")
		return err
	}
	s.countWebhook(string(event.Type), "applied")

	if s.email != nil && TierForSubscriptionStatus(status) == entaccount.PlanTierFree && acc.PlanTier == entaccount.PlanTierPro {
		subject, html, plain := buildSubscriptionEndedEmail(s.config.BaseURL)
		if err := s.email.SendEmail(acc.Email, acc.Email, subject, html, plain); err != nil {
			log.Printf("⚠️  Failed to send cancellation email to %s: %v", acc.Email, err)
		}
	}

	return nil
}

// applySubscriptionStatus persists the upstream status verbatim together
// with the tier derived from it. The write overwrites the full entitlement
// state, which is what makes redelivery and same-kind reordering safe.
func (s *Service) applySubscriptionStatus(ctx context.Context, acc *ent.Account, status string) error {
	tier := TierForSubscriptionStatus(status)

	_, err := s.db.Account.UpdateOneID(acc.ID).
		SetSubscriptionStatus(status).
		SetPlanTier(tier).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update account %d: %w", acc.ID, err)
	}

	log.Printf("🔄 Account %d subscription status=%s, tier=%s", acc.ID, status, tier)
	s.accounts.Invalidate(ctx, acc.AuthProviderID)
	return nil
}

// ReconcileAccount re-fetches the account's subscription from Stripe and
// re-applies the status mapping. Used by the nightly sweep to heal missed or
// out-of-order webhook deliveries.
func (s *Service) ReconcileAccount(ctx context.Context, acc *ent.Account) error {
	if acc.StripeSubscriptionID == nil || *acc.StripeSubscriptionID == "" {
		return nil
	}

	sub, err := stripesubscription.Get(*acc.StripeSubscriptionID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription %s: %w", *acc.StripeSubscriptionID, err)
	}

	status := string(sub.Status)
	if acc.SubscriptionStatus != nil && *acc.SubscriptionStatus == status && acc.PlanTier == TierForSubscriptionStatus(status) {
		return nil
	}

	return s.applySubscriptionStatus(ctx, acc, status)
}

// TierForSubscriptionStatus maps an upstream subscription status to the local
// plan tier: active and trialing entitle Pro, everything else is free.
func TierForSubscriptionStatus(status string) entaccount.PlanTier {
	switch status {
	case string(stripe.SubscriptionStatusActive), string(stripe.SubscriptionStatusTrialing):
		return entaccount.PlanTierPro
	default:
		return entaccount.PlanTierFree
	}
}

// GetPricing returns pricing information for all tiers
func (s *Service) GetPricing(freeLimit int) *models.PricingResponse {
	return &models.PricingResponse{
		Tiers: []models.PricingTier{
			{
				Name:        "free",
				Price:       0,
				PromptLimit: freeLimit,
				Description: "Perfect for trying out the platform",
				Features: []string{
					fmt.Sprintf("%d saved prompts", freeLimit),
					"Test prompts against all AI backends",
					"Search and tag filtering",
				},
			},
			{
				Name:        "pro",
				Price:       9,
				PromptLimit: account.UnlimitedPrompts,
				Description: "For serious prompt engineers",
				Features: []string{
					"Unlimited saved prompts",
					"Test prompts against all AI backends",
					"Prompt library export",
					"Priority support",
				},
			},
		},
	}
}

func (s *Service) countWebhook(eventType, outcome string) {
	if s.metrics != nil {
		s.metrics.WebhookEvents.WithLabelValues(eventType, outcome).Inc()
	}
}
