// Command main populates a running Ripple instance with demo data.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"ripple/internal/seed"
)

func main() {
	addr := flag.String("addr", "http://localhost:3000", "base URL of the running server")
	users := flag.Int("users", 10, "number of users to register")
	posts := flag.Int("posts", 3, "maximum posts per user")
	seedVal := flag.Int64("seed", time.Now().UnixNano(), "seed for reproducible data")
	flag.Parse()

	s := seed.NewSeeder(seed.Options{
		BaseURL:  *addr,
		Users:    *users,
		PostsPer: *posts,
		Seed:     *seedVal,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.Run(ctx); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
