// Package infrastructure assembles the systems every other part of the
// application depends on: lifecycle coordination, logging, and the database.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/scaffold/internal/config"
	"github.com/JaimeStill/scaffold/pkg/database"
	"github.com/JaimeStill/scaffold/pkg/lifecycle"
	"github.com/JaimeStill/scaffold/pkg/logging"
)

// Infrastructure holds the core systems required by models and controllers.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from cfg. A nil logger is built from the
// logging configuration. Nothing is started; call Start separately.
func New(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	if logger == nil {
		logger = logging.New(&cfg.Logging, nil)
	}

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Database:  db,
	}, nil
}

// Start registers the database with the lifecycle coordinator. The
// connection is verified by the coordinator's startup hooks.
func (i *Infrastructure) Start() {
	i.Database.Start(i.Lifecycle)
}
