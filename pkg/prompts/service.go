package prompts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/ent/predicate"
	"github.com/prompthub/prompthub/ent/prompt"
)

// ErrQuotaExceeded is returned when a free-tier account attempts to save
// beyond its prompt limit.
var ErrQuotaExceeded = errors.New("saved prompt limit reached")

const maxDerivedTitleLen = 50

// Service handles saved prompt business logic
type Service struct {
	db        *ent.Client
	freeLimit int
}

// NewService creates a new prompts service
func NewService(db *ent.Client, freeLimit int) *Service {
	return &Service{db: db, freeLimit: freeLimit}
}

// FreeLimit returns the free-tier saved-prompt cap.
func (s *Service) FreeLimit() int {
	return s.freeLimit
}

// Create saves a new prompt for the account. For free-tier accounts the
// count check and the insert run inside one transaction that first takes a
// write lock on the owner's account row, so two concurrent saves at the
// boundary serialize instead of both slipping under the cap. A plain
// count-then-insert is not enough on Postgres at READ COMMITTED: both
// transactions would count the same snapshot.
func (s *Service) Create(ctx context.Context, acc *ent.Account, title, body, modelUsed string, tags []string) (*ent.Prompt, error) {
	finalTitle := DeriveTitle(title, body)
	finalTags := dedupeTags(tags)

	if acc.PlanTier == account.PlanTierPro {
		return s.db.Prompt.Create().
			SetAccountID(acc.ID).
			SetTitle(finalTitle).
			SetBody(body).
			SetModelUsed(modelUsed).
			SetTags(finalTags).
			Save(ctx)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	// Touching the owner row takes a row-level write lock, so a concurrent
	// save for the same account blocks here and counts after we commit.
	if err := tx.Account.UpdateOneID(acc.ID).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	count, err := tx.Prompt.Query().
		Where(prompt.AccountIDEQ(acc.ID)).
		Count(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to count prompts: %w", err)
	}

	if count >= s.freeLimit {
		tx.Rollback()
		return nil, ErrQuotaExceeded
	}

	p, err := tx.Prompt.Create().
		SetAccountID(acc.ID).
		SetTitle(finalTitle).
		SetBody(body).
		SetModelUsed(modelUsed).
		SetTags(finalTags).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit prompt: %w", err)
	}

	return p, nil
}

// List returns the account's prompts, newest first. search matches title or
// body case-insensitively; tag requires an exact label match.
func (s *Service) List(ctx context.Context, accountID int, search, tag string) ([]*ent.Prompt, error) {
	q := s.db.Prompt.Query().
		Where(prompt.AccountIDEQ(accountID))

	if search != "" {
		q = q.Where(prompt.Or(
			prompt.TitleContainsFold(search),
			prompt.BodyContainsFold(search),
		))
	}

	if tag != "" {
		q = q.Where(predicate.Prompt(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(prompt.FieldTags, tag))
		}))
	}

	return q.Order(ent.Desc(prompt.FieldCreatedAt)).All(ctx)
}

// Get retrieves a single prompt scoped to its owner. A prompt that exists
// but belongs to someone else is indistinguishable from one that does not.
func (s *Service) Get(ctx context.Context, promptID, accountID int) (*ent.Prompt, error) {
	return s.db.Prompt.Query().
		Where(
			prompt.IDEQ(promptID),
			prompt.AccountIDEQ(accountID),
		).
		Only(ctx)
}

// Count returns the number of prompts owned by the account
func (s *Service) Count(ctx context.Context, accountID int) (int, error) {
	return s.db.Prompt.Query().
		Where(prompt.AccountIDEQ(accountID)).
		Count(ctx)
}

// DeriveTitle returns title unchanged when present, otherwise a prefix of
// the body capped at 50 characters with an ellipsis.
func DeriveTitle(title, body string) string {
	if title != "" {
		return title
	}
	runes := []rune(body)
	if len(runes) <= maxDerivedTitleLen {
		return body
	}
	return string(runes[:maxDerivedTitleLen]) + "..."
}

// dedupeTags collapses duplicate labels while preserving first-seen order.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
