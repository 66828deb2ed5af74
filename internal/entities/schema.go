package entities

import (
	"context"
	"fmt"

	"github.com/JaimeStill/scaffold/pkg/repository"
)

// Field describes one column of an entity table.
type Field struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Nullable   bool   `json:"nullable"`
	HasDefault bool   `json:"has_default"`
}

// Managed columns are assigned by the database and never written by forms.
var managed = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// Writable returns fields that a create form should collect.
func Writable(fields []Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if !managed[f.Name] {
			out = append(out, f)
		}
	}
	return out
}

// SchemaFunc loads the fields of an entity.
type SchemaFunc func(ctx context.Context) ([]Field, error)

// StaticSchema returns a SchemaFunc yielding fields.
func StaticSchema(fields ...Field) SchemaFunc {
	return func(context.Context) ([]Field, error) {
		return fields, nil
	}
}

const schemaQuery = `
	SELECT column_name, data_type, is_nullable = 'YES', column_default IS NOT NULL
	FROM information_schema.columns
	WHERE table_schema = $1 AND table_name = $2
	ORDER BY ordinal_position`

// TableSchema returns a SchemaFunc that introspects schema.table.
func TableSchema(q repository.Querier, schema, table string) SchemaFunc {
	return func(ctx context.Context) ([]Field, error) {
		fields, err := repository.QueryMany(ctx, q, schemaQuery, []any{schema, table}, scanField)
		if err != nil {
			return nil, fmt.Errorf("introspect %s.%s: %w", schema, table, err)
		}
		return fields, nil
	}
}

func scanField(s repository.Scanner) (Field, error) {
	var f Field
	err := s.Scan(&f.Name, &f.Type, &f.Nullable, &f.HasDefault)
	return f, err
}
