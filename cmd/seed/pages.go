package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/scaffold/internal/pages"
)

func init() {
	registerSeeder(&PageSeeder{})
}

// PageSeedData represents the JSON structure for page seed files.
type PageSeedData struct {
	Pages []pages.CreateCommand `json:"pages"`
}

// PageSeeder inserts or refreshes the pages the site ships with.
type PageSeeder struct {
	file string
}

func (s *PageSeeder) Name() string {
	return "pages"
}

func (s *PageSeeder) Description() string {
	return "Seeds the home and about pages"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *PageSeeder) SetFile(path string) {
	s.file = path
}

// Seed saves every page, updating title and content of existing slugs.
func (s *PageSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.load()
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO pages (slug, title, content)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			updated_at = NOW()`

	for _, p := range data.Pages {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("page %q: %w", p.Slug, err)
		}
		if _, err := tx.ExecContext(ctx, query, p.Slug, p.Title, p.Content); err != nil {
			return fmt.Errorf("save page %s: %w", p.Slug, err)
		}
	}

	return nil
}

func (s *PageSeeder) load() (*PageSeedData, error) {
	content, err := readSeedFile(s.file, "seeds/pages.json")
	if err != nil {
		return nil, err
	}

	var data PageSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}
