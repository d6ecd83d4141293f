package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entaccount "github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/pkg/prompts"
)

// Walks an account through the full arc: free signup, hitting the cap,
// upgrading via checkout, saving freely, then losing the subscription.
func TestSubscriptionLifecycle(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	ctx := context.Background()
	promptService := prompts.NewService(client, 5)

	acc, err := service.accounts.ResolveOrCreate(ctx, "auth0|lifecycle", "lifecycle@example.com")
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierFree, acc.PlanTier)

	// Fill the free allowance
	for i := 0; i < 5; i++ {
		_, err := promptService.Create(ctx, acc, "Prompt", "Body", "chatgpt", nil)
		require.NoError(t, err)
	}
	_, err = promptService.Create(ctx, acc, "Blocked", "Body", "chatgpt", nil)
	require.ErrorIs(t, err, prompts.ErrQuotaExceeded)

	// Checkout completes
	event := checkoutCompletedEvent(t, acc.ID, "sub_lifecycle", "cus_lifecycle")
	require.NoError(t, service.handleCheckoutCompleted(ctx, event))

	acc, err = client.Account.Get(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierPro, acc.PlanTier)

	// The cap is gone
	for i := 0; i < 3; i++ {
		_, err := promptService.Create(ctx, acc, "Pro prompt", "Body", "chatgpt", nil)
		require.NoError(t, err)
	}

	// The subscription ends
	deleted := subscriptionEvent(t, "customer.subscription.deleted", "sub_lifecycle", "canceled")
	require.NoError(t, service.handleSubscriptionChange(ctx, deleted))

	acc, err = client.Account.Get(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, entaccount.PlanTierFree, acc.PlanTier)

	// Prompts saved while Pro are never pruned
	count, err := promptService.Count(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, count)

	// But the library is over the cap now, so new saves are rejected
	_, err = promptService.Create(ctx, acc, "Back to capped", "Body", "chatgpt", nil)
	assert.ErrorIs(t, err, prompts.ErrQuotaExceeded)
}
