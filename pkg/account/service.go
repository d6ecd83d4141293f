package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/ent/prompt"
	"github.com/prompthub/prompthub/pkg/cache"
	"github.com/prompthub/prompthub/pkg/metrics"
)

// ErrEmailRequired is returned when a first-time sync arrives without an
// email address for the new account.
var ErrEmailRequired = errors.New("email is required to create an account")

// UnlimitedPrompts marks a tier without a saved-prompt cap.
const UnlimitedPrompts = -1

const (
	cacheKeyPrefix = "account:subject:"
	cacheTTL       = 60 * time.Second
)

// Service owns the mapping from an external identity to a local Account.
type Service struct {
	db        *ent.Client
	cache     *cache.Client
	metrics   *metrics.Metrics
	freeLimit int
}

// NewService creates a new account service. cache and m may be nil.
func NewService(db *ent.Client, c *cache.Client, m *metrics.Metrics, freeLimit int) *Service {
	return &Service{
		db:        db,
		cache:     c,
		metrics:   m,
		freeLimit: freeLimit,
	}
}

// FreeLimit returns the free-tier saved-prompt cap.
func (s *Service) FreeLimit() int {
	return s.freeLimit
}

// ResolveOrCreate looks up the Account for a verified identity, creating it
// lazily on first contact. email is only consulted when the account does not
// exist yet. Two concurrent first calls for the same subject cannot produce
// two rows: the store enforces a unique constraint on auth_provider_id and
// the losing writer re-reads the winning row.
func (s *Service) ResolveOrCreate(ctx context.Context, subject, email string) (*ent.Account, error) {
	acc, err := s.db.Account.Query().
		Where(account.AuthProviderIDEQ(subject)).
		Only(ctx)
	if err == nil {
		return acc, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if email == "" {
		return nil, ErrEmailRequired
	}

	acc, err = s.db.Account.Create().
		SetEmail(email).
		SetAuthProviderID(subject).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the insert race; the winner's row is authoritative.
			return s.db.Account.Query().
				Where(account.AuthProviderIDEQ(subject)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Printf("✅ Account created: id=%d, subject=%s", acc.ID, subject)
	if s.metrics != nil {
		s.metrics.AccountsCreated.Inc()
	}

	return acc, nil
}

// GetBySubject returns the Account for a verified subject, using the Redis
// cache when available. The cache is invalidated on every reconciler mutation.
func (s *Service) GetBySubject(ctx context.Context, subject string) (*ent.Account, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKeyPrefix+subject)
		if err == nil {
			var acc ent.Account
			if jsonErr := json.Unmarshal([]byte(cached), &acc); jsonErr == nil {
				if s.metrics != nil {
					s.metrics.CacheHits.WithLabelValues("account").Inc()
				}
				return &acc, nil
			}
		} else if cache.IsMiss(err) {
			if s.metrics != nil {
				s.metrics.CacheMisses.WithLabelValues("account").Inc()
			}
		} else {
			// Cache being down never fails the request.
			log.Printf("⚠️  Account cache read failed: %v", err)
		}
	}

	acc, err := s.db.Account.Query().
		Where(account.AuthProviderIDEQ(subject)).
		Only(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, jsonErr := json.Marshal(acc); jsonErr == nil {
			if err := s.cache.Set(ctx, cacheKeyPrefix+subject, data, cacheTTL); err != nil {
				log.Printf("⚠️  Account cache write failed: %v", err)
			}
		}
	}

	return acc, nil
}

// Invalidate drops the cached entry for a subject. Called after every
// mutation of the account's entitlement state.
func (s *Service) Invalidate(ctx context.Context, subject string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyPrefix+subject); err != nil {
		log.Printf("⚠️  Account cache invalidation failed for %s: %v", subject, err)
	}
}

// Usage reports the account's saved-prompt count against its tier limit.
func (s *Service) Usage(ctx context.Context, acc *ent.Account) (count, limit int, err error) {
	count, err = s.db.Prompt.Query().
		Where(prompt.AccountIDEQ(acc.ID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count prompts: %w", err)
	}

	if acc.PlanTier == account.PlanTierPro {
		return count, UnlimitedPrompts, nil
	}
	return count, s.freeLimit, nil
}
