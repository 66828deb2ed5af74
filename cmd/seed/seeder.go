// Package main provides the seed command for populating the database with
// initial data. Seeders run individually or together within a single
// transaction.
package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"slices"
)

//go:embed seeds/*.json
var seedFiles embed.FS

// Seeder defines the interface for database seeders.
// Each seeder is responsible for populating a specific domain's data.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed executes the seeding logic within the provided transaction.
	Seed(ctx context.Context, tx *sql.Tx) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the registry. Seeders self-register via init.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns all registered seeders ordered by name.
func listSeeders() []Seeder {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	slices.Sort(names)

	result := make([]Seeder, len(names))
	for i, name := range names {
		result[i] = seeders[name]
	}
	return result
}

// runSeeders executes the given seeders in order within one transaction.
// If any seeder fails, the entire transaction is rolled back.
func runSeeders(ctx context.Context, db *sql.DB, list ...Seeder) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, s := range list {
		if err := s.Seed(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func readSeedFile(external, embedded string) ([]byte, error) {
	if external != "" {
		return readFile(external)
	}
	content, err := seedFiles.ReadFile(embedded)
	if err != nil {
		return nil, fmt.Errorf("read embedded seed file: %w", err)
	}
	return content, nil
}
