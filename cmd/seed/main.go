// Command seed populates the local store with demo users and posts.
package main

import (
	"context"
	"flag"
	"log"

	"skillconnect/internal/config"
	"skillconnect/internal/kv"
	"skillconnect/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 8, "number of generated users")
	numPosts := flag.Int("posts", 24, "number of generated posts")
	password := flag.String("password", "password", "password for generated accounts")
	fixture := flag.String("fixture", "", "optional YAML fixture file applied before generation")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := kv.Open(cfg.DataPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	err = seed.Run(context.Background(), store, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		Password:    *password,
		FixturePath: *fixture,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users and %d posts into %s", *numUsers, *numPosts, cfg.DataPath)
}
