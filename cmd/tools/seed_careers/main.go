// Command seed_careers populates the careers table from a catalog JSON file.
//
// Usage:
//
//	go run cmd/tools/seed_careers/main.go [catalog.json]
//
// Defaults to data/careers.json. Requires DATABASE_URL environment variable
// to be set.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-match/internal/catalog"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS careers (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	description     TEXT,
	required_skills TEXT[] NOT NULL DEFAULT '{}',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	path := "data/careers.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	careers, err := catalog.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := catalog.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx, createTableSQL); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create careers table: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeding %d careers from %s\n", len(careers), path)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, career := range careers {
		if career.ID == "" {
			career.ID = uuid.New().String()
		}
		g.Go(func() error {
			return store.UpsertCareer(gCtx, career)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Seeding failed: %v\n", err)
		os.Exit(1)
	}

	count, err := store.CountCareers(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to count careers: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Done. Catalog now holds %d careers.\n", count)
}
