package jobs

import (
	"context"
	"log"
	"time"

	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/pkg/billing"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	db      *ent.Client
	billing *billing.Service
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, billingService *billing.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		db:      db,
		billing: billingService,
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 3 AM: Reconcile subscription state against Stripe.
	// Webhook delivery is not ordered, so a stale update can linger until
	// this sweep fetches the current subscription and overwrites it.
	_, err := cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running daily subscription reconciliation job...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if err := cm.ReconcileSubscriptions(ctx); err != nil {
			cm.logger.Printf("⚠️ Reconciliation sweep completed with errors: %v", err)
			return
		}

		cm.logger.Println("✅ Daily subscription reconciliation job completed")
	})

	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Daily at 3 AM: Reconcile subscriptions with Stripe")

	return nil
}

// ReconcileSubscriptions sweeps every account that has a Stripe subscription
// and re-syncs its tier and status from Stripe. Individual account failures
// are logged and skipped so one bad subscription does not stall the sweep.
func (cm *CronManager) ReconcileSubscriptions(ctx context.Context) error {
	accounts, err := cm.db.Account.Query().
		Where(account.StripeSubscriptionIDNotNil()).
		All(ctx)
	if err != nil {
		return err
	}

	if len(accounts) == 0 {
		cm.logger.Println("✅ No subscribed accounts to reconcile")
		return nil
	}

	cm.logger.Printf("🔄 Reconciling %d subscribed accounts...", len(accounts))

	var failures int
	for _, acc := range accounts {
		if err := cm.billing.ReconcileAccount(ctx, acc); err != nil {
			cm.logger.Printf("⚠️ Failed to reconcile account %d: %v", acc.ID, err)
			failures++
		}
	}

	if failures > 0 {
		cm.logger.Printf("⚠️ Reconciliation finished: %d of %d accounts failed", failures, len(accounts))
	} else {
		cm.logger.Printf("✅ Reconciliation finished: %d accounts in sync", len(accounts))
	}

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
