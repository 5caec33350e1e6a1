// Command seed fills the configured store with development fixtures.
package main

import (
	"context"
	"log"
	"time"

	"soulshub/internal/config"
	"soulshub/internal/seed"
	"soulshub/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed.Run(ctx, st); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Development content seeded.")
}
