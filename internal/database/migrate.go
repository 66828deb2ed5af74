// Package database carries the schema migrations for the application tables.
package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	pkgdb "github.com/JaimeStill/scaffold/pkg/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Direction selects which way Migrate moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrations returns the embedded migration files.
func Migrations() embed.FS {
	return migrations
}

// Migrate applies every pending migration in dir against cfg.
// An already current schema is not an error.
func Migrate(cfg *pkgdb.Config, dir Direction, logger *slog.Logger) error {
	if dir != Up && dir != Down {
		return fmt.Errorf("unknown migration direction %q", dir)
	}
	logger = logger.With("system", "migrate")

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URL("pgx5"))
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("close migrate", "source_error", srcErr, "database_error", dbErr)
		}
	}()

	if dir == Up {
		err = m.Up()
	} else {
		err = m.Down()
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("schema up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", dir, err)
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		logger.Info("migrations applied", "direction", dir, "version", 0)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}

	logger.Info("migrations applied", "direction", dir, "version", version, "dirty", dirty)
	return nil
}
