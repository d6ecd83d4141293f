package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/ent/account"
)

// GeneratorConfig configures fake data generation parameters
type GeneratorConfig struct {
	Accounts       int
	PromptsPerFree int // capped below the free limit by the caller
	PromptsPerPro  int
	ProChance      float64 // 0.0-1.0 (probability of an account being pro)
	TagChance      float64 // probability of a prompt carrying tags
	UntitledChance float64 // probability of a prompt being saved without a title
}

// DefaultGeneratorConfig returns sensible defaults for local development
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Accounts:       25,
		PromptsPerFree: 4,
		PromptsPerPro:  30,
		ProChance:      0.3,
		TagChance:      0.7,
		UntitledChance: 0.2,
	}
}

// modelSelectors are the AI backends a prompt can target
var modelSelectors = []string{"chatgpt", "claude", "gemini"}

// tagPool is the vocabulary fake prompts draw their tags from
var tagPool = []string{
	"writing", "coding", "marketing", "email", "summarization",
	"translation", "brainstorm", "sql", "review", "support",
	"agents", "rag", "few-shot", "chain-of-thought", "roleplay",
}

// promptTemplates are openings for generated prompt bodies
var promptTemplates = []string{
	"You are an expert %s. Given the following input, produce",
	"Act as a senior %s and review this carefully:",
	"Summarize the following %s content in three bullet points:",
	"Rewrite the text below in the voice of a %s:",
	"Generate five ideas for a %s campaign about",
	"Explain the following %s concept to a beginner:",
}

// GenerateAccounts inserts count fake accounts, each with a prompt library
// sized by its tier. Returns the created accounts.
func GenerateAccounts(ctx context.Context, db *ent.Client, cfg GeneratorConfig) ([]*ent.Account, error) {
	accounts := make([]*ent.Account, 0, cfg.Accounts)

	for i := 0; i < cfg.Accounts; i++ {
		tier := account.PlanTierFree
		if rand.Float64() < cfg.ProChance {
			tier = account.PlanTierPro
		}

		creator := db.Account.Create().
			SetEmail(gofakeit.Email()).
			SetAuthProviderID(fmt.Sprintf("seed|%s", gofakeit.UUID())).
			SetPlanTier(tier)

		if tier == account.PlanTierPro {
			creator = creator.
				SetStripeCustomerID("cus_" + gofakeit.LetterN(14)).
				SetStripeSubscriptionID("sub_" + gofakeit.LetterN(14)).
				SetSubscriptionStatus("active")
		}

		acc, err := creator.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}

		promptCount := cfg.PromptsPerFree
		if tier == account.PlanTierPro {
			promptCount = cfg.PromptsPerPro
		}
		if err := GeneratePrompts(ctx, db, acc.ID, promptCount, cfg); err != nil {
			return nil, err
		}

		accounts = append(accounts, acc)
	}

	return accounts, nil
}

// GeneratePrompts inserts count fake prompts for an account
func GeneratePrompts(ctx context.Context, db *ent.Client, accountID, count int, cfg GeneratorConfig) error {
	for i := 0; i < count; i++ {
		body := generateBody()

		title := ""
		if rand.Float64() >= cfg.UntitledChance {
			title = strings.TrimSuffix(gofakeit.HipsterSentence(3), ".")
		}
		if title == "" {
			// Mirror what the API does for untitled saves.
			runes := []rune(body)
			if len(runes) > 50 {
				title = string(runes[:50]) + "..."
			} else {
				title = body
			}
		}

		tags := []string{}
		if rand.Float64() < cfg.TagChance {
			tags = pickTags(1 + rand.Intn(3))
		}

		_, err := db.Prompt.Create().
			SetAccountID(accountID).
			SetTitle(title).
			SetBody(body).
			SetModelUsed(modelSelectors[rand.Intn(len(modelSelectors))]).
			SetTags(tags).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create prompt: %w", err)
		}
	}

	return nil
}

func generateBody() string {
	template := promptTemplates[rand.Intn(len(promptTemplates))]
	opening := fmt.Sprintf(template, gofakeit.JobDescriptor())
	return opening + " " + gofakeit.Paragraph(1, 2+rand.Intn(3), 8, " ")
}

func pickTags(n int) []string {
	picked := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(picked) < n {
		t := tagPool[rand.Intn(len(tagPool))]
		if seen[t] {
			continue
		}
		seen[t] = true
		picked = append(picked, t)
	}
	return picked
}
