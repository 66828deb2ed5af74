package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/scaffold/internal/users"
)

func init() {
	registerSeeder(&UserSeeder{})
}

// UserSeedData represents the JSON structure for user seed files.
type UserSeedData struct {
	Users []users.CreateCommand `json:"users"`
}

// UserSeeder inserts the initial user accounts.
type UserSeeder struct {
	file string
}

func (s *UserSeeder) Name() string {
	return "users"
}

func (s *UserSeeder) Description() string {
	return "Seeds the initial user accounts"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *UserSeeder) SetFile(path string) {
	s.file = path
}

// Seed saves every user, updating the email of existing usernames.
func (s *UserSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	content, err := readSeedFile(s.file, "seeds/users.json")
	if err != nil {
		return err
	}

	var data UserSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	const query = `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET
			email = EXCLUDED.email,
			updated_at = NOW()`

	for _, u := range data.Users {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("user %q: %w", u.Username, err)
		}
		if _, err := tx.ExecContext(ctx, query, u.Username, u.Email); err != nil {
			return fmt.Errorf("save user %s: %w", u.Username, err)
		}
	}

	return nil
}
