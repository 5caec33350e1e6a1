// Command admin performs maintenance against the store: a full data reset or
// an epoch report, without going through the HTTP gate.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"soulshub/internal/config"
	"soulshub/internal/repository"
	"soulshub/internal/store"
)

func main() {
	reset := flag.Bool("reset", false, "wipe all community data and bump the session epoch")
	epoch := flag.Bool("epoch", false, "print the current admin session epoch")
	flag.Parse()

	if !*reset && !*epoch {
		flag.Usage()
		return
	}

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

	admin := repository.NewAdminRepository(st)

	if *epoch {
		current, err := admin.Epoch(ctx)
		if err != nil {
			log.Fatalf("Failed to read epoch: %v", err)
		}
		fmt.Printf("admin epoch: %d\n", current)
	}

	if *reset {
		if err := admin.ResetAll(ctx); err != nil {
			log.Fatalf("Reset failed: %v", err)
		}
		fmt.Println("All community data wiped; outstanding admin sessions invalidated.")
	}
}
