package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/ent/enttest"
	"github.com/prompthub/prompthub/pkg/account"
	"github.com/prompthub/prompthub/pkg/billing"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestManager(t *testing.T) (*CronManager, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	accounts := account.NewService(client, nil, nil, 5)
	billingService := billing.NewService(client, accounts, &billing.StripeConfig{
		WebhookSecret: "whsec_test",
	})

	return NewCronManager(client, billingService, nil), client
}

func TestSetupJobs(t *testing.T) {
	cm, _ := setupTestManager(t)
	assert.NoError(t, cm.SetupJobs())
}

func TestReconcileSubscriptions_NoSubscribedAccounts(t *testing.T) {
	cm, client := setupTestManager(t)

	// Accounts without a subscription are skipped entirely
	_, err := client.Account.Create().
		SetEmail("free@example.com").
		SetAuthProviderID("auth0|free").
		Save(context.Background())
	require.NoError(t, err)

	assert.NoError(t, cm.ReconcileSubscriptions(context.Background()))
}

func TestStartStop(t *testing.T) {
	cm, _ := setupTestManager(t)
	require.NoError(t, cm.SetupJobs())
	cm.Start()
	cm.Stop()
}
