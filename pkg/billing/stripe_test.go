package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/prompthub/prompthub/ent"
	entaccount "github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/ent/enttest"
	"github.com/prompthub/prompthub/pkg/account"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
}

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := setupTestDB(t)
	accounts := account.NewService(client, nil, nil, 5)
	service := &Service{
		db:       client,
		accounts: accounts,
		config: &StripeConfig{
			WebhookSecret: "whsec_test",
			PricePro:      "price_pro",
			BaseURL:       "https://prompthub.dev",
		},
	}
	return service, client
}

type recordingEmailSender struct {
	sent []string // subjects, in order
}

func (r *recordingEmailSender) SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	r.sent = append(r.sent, subject)
	return nil
}

func createAccount(t *testing.T, client *ent.Client, subject string) *ent.Account {
	acc, err := client.Account.Create().
		SetEmail(subject + "@example.com").
		SetAuthProviderID(subject).
		Save(context.Background())
	require.NoError(t, err)
	return acc
}

func checkoutCompletedEvent(t *testing.T, accountID int, subscriptionID, customerID string) stripe.Event {
	payload := map[string]any{
		"id":             "cs_test_123",
		"mode":           "subscription",
		"payment_status": "paid",
		"metadata": map[string]string{
			metadataAccountKey: fmt.Sprintf("%d", accountID),
		},
		"subscription": map[string]any{"id": subscriptionID},
		"customer":     map[string]any{"id": customerID},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	return stripe.Event{
		ID:   "evt_test_checkout",
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

func subscriptionEvent(t *testing.T, eventType, subscriptionID, status string) stripe.Event {
	raw, err := json.Marshal(map[string]any{
		"id":     subscriptionID,
		"status": status,
	})
	require.NoError(t, err)

	return stripe.Event{
		ID:   "evt_test_sub",
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestTierForSubscriptionStatus(t *testing.T) {
	assert.Equal(t, entaccount.PlanTierPro, TierForSubscriptionStatus("active"))
	assert.Equal(t, entaccount.PlanTierPro, TierForSubscriptionStatus("trialing"))
	assert.Equal(t, entaccount.PlanTierFree, TierForSubscriptionStatus("past_due"))
	assert.Equal(t, entaccount.PlanTierFree, TierForSubscriptionStatus("canceled"))
	assert.Equal(t, entaccount.PlanTierFree, TierForSubscriptionStatus("unpaid"))
	assert.Equal(t, entaccount.PlanTierFree, TierForSubscriptionStatus("incomplete"))
	assert.Equal(t, entaccount.PlanTierFree, TierForSubscriptionStatus(""))
	assert.Equal(t, entaccount.PlanTierFree, TierForSubscriptionStatus("something_new"))
}

func TestHandleCheckoutCompleted_UpgradesAccount(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	acc := createAccount(t, client, "auth0|checkout")
	event := checkoutCompletedEvent(t, acc.ID, "sub_123", "cus_123")

	err := service.handleCheckoutCompleted(context.Background(), event)
	require.NoError(t, err)

	updated, err := client.Account.Get(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierPro, updated.PlanTier)
	require.NotNil(t, updated.SubscriptionStatus)
	assert.Equal(t, "active", *updated.SubscriptionStatus)
	require.NotNil(t, updated.StripeSubscriptionID)
	assert.Equal(t, "sub_123", *updated.StripeSubscriptionID)
	require.NotNil(t, updated.StripeCustomerID)
	assert.Equal(t, "cus_123", *updated.StripeCustomerID)
}

func TestHandleCheckoutCompleted_Redelivery(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	acc := createAccount(t, client, "auth0|redelivered")
	event := checkoutCompletedEvent(t, acc.ID, "sub_123", "cus_123")

	require.NoError(t, service.handleCheckoutCompleted(context.Background(), event))
	require.NoError(t, service.handleCheckoutCompleted(context.Background(), event))

	updated, err := client.Account.Get(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierPro, updated.PlanTier)
	assert.Equal(t, "sub_123", *updated.StripeSubscriptionID)
}

func TestHandleCheckoutCompleted_FallsBackToCustomerID(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	acc, err := client.Account.Create().
		SetEmail("linked@example.com").
		SetAuthProviderID("auth0|linked").
		SetStripeCustomerID("cus_known").
		Save(context.Background())
	require.NoError(t, err)

	// Stale metadata pointing at a nonexistent account id
	event := checkoutCompletedEvent(t, 999999, "sub_456", "cus_known")

	require.NoError(t, service.handleCheckoutCompleted(context.Background(), event))

	updated, err := client.Account.Get(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierPro, updated.PlanTier)
}

func TestHandleCheckoutCompleted_NoMatchingAccountAcked(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	event := checkoutCompletedEvent(t, 999999, "sub_789", "cus_unknown")

	// No account matches: the event is dropped but still acknowledged
	assert.NoError(t, service.handleCheckoutCompleted(context.Background(), event))
}

func TestHandleCheckoutCompleted_UnpaidSessionIgnored(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	acc := createAccount(t, client, "auth0|unpaid")

	raw, err := json.Marshal(map[string]any{
		"id":             "cs_unpaid",
		"mode":           "subscription",
		"payment_status": "unpaid",
		"metadata":       map[string]string{metadataAccountKey: fmt.Sprintf("%d", acc.ID)},
	})
	require.NoError(t, err)
	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}

	require.NoError(t, service.handleCheckoutCompleted(context.Background(), event))

	updated, err := client.Account.Get(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierFree, updated.PlanTier)
}

func TestHandleSubscriptionChange_CancellationDowngrades(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	sender := &recordingEmailSender{}
	service.SetEmailSender(sender)

	acc, err := client.Account.Create().
		SetEmail("cancel@example.com").
		SetAuthProviderID("auth0|cancel").
		SetPlanTier(entaccount.PlanTierPro).
		SetSubscriptionStatus("active").
		SetStripeSubscriptionID("sub_cancel").
		Save(context.Background())
	require.NoError(t, err)

	event := subscriptionEvent(t, "customer.subscription.deleted", "sub_cancel", "canceled")
	require.NoError(t, service.handleSubscriptionChange(context.Background(), event))

	updated, err := client.Account.Get(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierFree, updated.PlanTier)
	assert.Equal(t, "canceled", *updated.SubscriptionStatus)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "ended")
}

func TestHandleSubscriptionChange_TrialingKeepsPro(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	acc, err := client.Account.Create().
		SetEmail("trial@example.com").
		SetAuthProviderID("auth0|trial").
		SetPlanTier(entaccount.PlanTierPro).
		SetSubscriptionStatus("active").
		SetStripeSubscriptionID("sub_trial").
		Save(context.Background())
	require.NoError(t, err)

	event := subscriptionEvent(t, "customer.subscription.updated", "sub_trial", "trialing")
	require.NoError(t, service.handleSubscriptionChange(context.Background(), event))

	updated, err := client.Account.Get(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierPro, updated.PlanTier)
	assert.Equal(t, "trialing", *updated.SubscriptionStatus)
}

func TestHandleSubscriptionChange_StatusStoredVerbatim(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	acc, err := client.Account.Create().
		SetEmail("verbatim@example.com").
		SetAuthProviderID("auth0|verbatim").
		SetPlanTier(entaccount.PlanTierPro).
		SetSubscriptionStatus("active").
		SetStripeSubscriptionID("sub_verbatim").
		Save(context.Background())
	require.NoError(t, err)

	// A status value this code has never heard of maps to free but is kept as is
	event := subscriptionEvent(t, "customer.subscription.updated", "sub_verbatim", "paused")
	require.NoError(t, service.handleSubscriptionChange(context.Background(), event))

	updated, err := client.Account.Get(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierFree, updated.PlanTier)
	assert.Equal(t, "paused", *updated.SubscriptionStatus)
}

func TestHandleSubscriptionChange_UnknownSubscriptionAcked(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	event := subscriptionEvent(t, "customer.subscription.updated", "sub_nobody", "active")
	assert.NoError(t, service.handleSubscriptionChange(context.Background(), event))
}

func TestHandleSubscriptionChange_Redelivery(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	acc, err := client.Account.Create().
		SetEmail("twice@example.com").
		SetAuthProviderID("auth0|twice").
		SetPlanTier(entaccount.PlanTierPro).
		SetSubscriptionStatus("active").
		SetStripeSubscriptionID("sub_twice").
		Save(context.Background())
	require.NoError(t, err)

	event := subscriptionEvent(t, "customer.subscription.deleted", "sub_twice", "canceled")
	require.NoError(t, service.handleSubscriptionChange(context.Background(), event))
	require.NoError(t, service.handleSubscriptionChange(context.Background(), event))

	updated, err := client.Account.Get(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierFree, updated.PlanTier)
	assert.Equal(t, "canceled", *updated.SubscriptionStatus)
}

func TestHandleWebhook_InvalidSignature(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	err := service.HandleWebhook(context.Background(), []byte(`{"type":"x"}`), "t=1,v1=bogus")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCreateCheckoutSession_AlreadySubscribed(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	acc, err := client.Account.Create().
		SetEmail("already@example.com").
		SetAuthProviderID("auth0|already").
		SetPlanTier(entaccount.PlanTierPro).
		Save(context.Background())
	require.NoError(t, err)

	_, err = service.CreateCheckoutSession(context.Background(), acc.ID)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestGetPricing(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	pricing := service.GetPricing(5)
	require.Len(t, pricing.Tiers, 2)

	free := pricing.Tiers[0]
	assert.Equal(t, "free", free.Name)
	assert.Equal(t, 0, free.Price)
	assert.Equal(t, 5, free.PromptLimit)

	pro := pricing.Tiers[1]
	assert.Equal(t, "pro", pro.Name)
	assert.Equal(t, account.UnlimitedPrompts, pro.PromptLimit)
}

func TestBuildUpgradeConfirmedEmail(t *testing.T) {
	subject, html, plain := buildUpgradeConfirmedEmail("https://prompthub.dev")

	assert.Contains(t, subject, "Pro")
	assert.Contains(t, html, "https://prompthub.dev/dashboard")
	assert.Contains(t, plain, "https://prompthub.dev/dashboard")
	assert.NotEmpty(t, subject)
}

func TestBuildSubscriptionEndedEmail(t *testing.T) {
	subject, html, plain := buildSubscriptionEndedEmail("https://prompthub.dev")

	assert.Contains(t, subject, "ended")
	assert.Contains(t, html, "https://prompthub.dev/pricing")
	assert.Contains(t, plain, "free plan")
	assert.NotEmpty(t, subject)
}
