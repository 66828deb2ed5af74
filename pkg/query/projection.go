// Package query builds parameterized SQL over a projection of table columns
// onto Go field names.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps Go field names onto qualified columns of a single table.
// Columns are emitted in projection order so that scan functions line up.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	fields  []string
	columns map[string]string
}

// NewProjectionMap creates an empty projection over schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project adds column to the projection under the given field name.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	if _, ok := p.columns[field]; !ok {
		p.fields = append(p.fields, field)
	}
	p.columns[field] = fmt.Sprintf("%s.%s", p.alias, column)
	return p
}

// Table returns the aliased table reference for a FROM clause.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Columns returns the projected columns as a comma-separated select list.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = p.columns[f]
	}
	return strings.Join(cols, ", ")
}

// Column returns the qualified column for field.
// Unknown fields are returned unchanged.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.columns[field]; ok {
		return col
	}
	return field
}

// Has reports whether field is part of the projection.
func (p *ProjectionMap) Has(field string) bool {
	_, ok := p.columns[field]
	return ok
}

// Fields returns the projected field names in projection order.
func (p *ProjectionMap) Fields() []string {
	out := make([]string, len(p.fields))
	copy(out, p.fields)
	return out
}
