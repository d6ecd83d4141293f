package main

import (
	"context"
	"flag"
	"log"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prompthub/prompthub/config"
	"github.com/prompthub/prompthub/pkg/database"
	"github.com/prompthub/prompthub/pkg/testdata"
)

func main() {
	accounts := flag.Int("accounts", 25, "number of fake accounts to create")
	seed := flag.Int64("seed", 0, "random seed (0 uses a random one)")
	flag.Parse()

	if *seed != 0 {
		gofakeit.Seed(*seed)
	}

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	genCfg := testdata.DefaultGeneratorConfig()
	genCfg.Accounts = *accounts
	if genCfg.PromptsPerFree >= cfg.FreePromptLimit {
		genCfg.PromptsPerFree = cfg.FreePromptLimit - 1
	}

	log.Printf("🌱 Seeding %d accounts...", genCfg.Accounts)

	created, err := testdata.GenerateAccounts(context.Background(), db.Ent, genCfg)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	var pro int
	for _, acc := range created {
		if acc.PlanTier == "pro" {
			pro++
		}
	}

	log.Printf("✅ Seeded %d accounts (%d pro, %d free)", len(created), pro, len(created)-pro)
}
