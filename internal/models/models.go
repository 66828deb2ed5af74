// Package models assembles the persistence systems handed to controllers.
package models

import (
	"database/sql"
	"log/slog"

	"github.com/JaimeStill/scaffold/internal/entities"
	"github.com/JaimeStill/scaffold/internal/pages"
	"github.com/JaimeStill/scaffold/internal/users"
	"github.com/JaimeStill/scaffold/pkg/pagination"
)

// Schema is the database schema holding the entity tables.
const Schema = "public"

// SchemaSource yields the field loader for a table.
type SchemaSource func(table string) entities.SchemaFunc

// Models is the handle injected into controller factories.
type Models struct {
	Pages    pages.System
	Users    users.System
	Entities *entities.Registry
}

// New builds every system over db.
func New(db *sql.DB, logger *slog.Logger, cfg pagination.Config) *Models {
	return From(
		pages.New(db, logger, cfg),
		users.New(db, logger, cfg),
		func(table string) entities.SchemaFunc {
			return entities.TableSchema(db, Schema, table)
		},
	)
}

// From wires already constructed systems and registers their admin entities.
func From(p pages.System, u users.System, schema SchemaSource) *Models {
	reg := entities.NewRegistry()
	reg.Register(pages.NewEntity(p, schema("pages")))
	reg.Register(users.NewEntity(u, schema("users")))

	return &Models{
		Pages:    p,
		Users:    u,
		Entities: reg,
	}
}
