// Package database manages a pooled PostgreSQL handle over database/sql
// using the pgx stdlib driver.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/scaffold/pkg/lifecycle"
)

// System owns the connection pool and its lifecycle hooks.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator)
}

type database struct {
	conn   *sql.DB
	cfg    *Config
	logger *slog.Logger
}

// New opens a pool for cfg. No connection is made until Start or first use.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:   conn,
		cfg:    cfg,
		logger: logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

// Start registers a connectivity check as a startup hook and closes the
// pool on shutdown.
func (d *database) Start(lc *lifecycle.Coordinator) {
	lc.OnStartup(func() error {
		ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
		defer cancel()

		if err := d.conn.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
		d.logger.Info("database connected", "host", d.cfg.Host, "name", d.cfg.Name)
		return nil
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})
}
