package query

import (
	"fmt"
	"strings"
)

type condition struct {
	clause string
	args   []any
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	order       []SortField
	defaultSort SortField
}

// NewBuilder creates a Builder for the given projection with a default sort field.
func NewBuilder(projection *ProjectionMap, defaultSort SortField) *Builder {
	return &Builder{
		projection:  projection,
		conditions:  make([]condition, 0),
		defaultSort: defaultSort,
	}
}

// Build returns an unpaginated SELECT query with the current conditions and ordering.
func (b *Builder) Build() (string, []any) {
	where, args, _ := b.buildWhere(1)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
	)
	return sql, args
}

// BuildCount returns a COUNT(*) query with the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args, _ := b.buildWhere(1)
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.Table(), where)
	return sql, args
}

// BuildPage returns a paginated SELECT query with ordering, limit, and offset.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	where, args, _ := b.buildWhere(1)
	orderBy := b.buildOrderBy()
	offset := (page - 1) * pageSize

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		orderBy,
		pageSize,
		offset,
	)

	return sql, args
}

// BuildSingle returns a SELECT query for a single record by ID.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	col := b.projection.Column(idField)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		col,
	)
	return sql, []any{id}
}

// OrderBy appends a sort field. Empty fields are ignored.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	if field != "" {
		b.order = append(b.order, SortField{Field: field, Descending: descending})
	}
	return b
}

// OrderByFields appends every sort field known to the projection.
// Fields outside the projection are skipped so that client input never reaches SQL.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	for _, f := range fields {
		if b.projection.Has(f.Field) {
			b.order = append(b.order, f)
		}
	}
	return b
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s = $%%d", col),
		args:   []any{value},
	})
	return b
}

// WhereSearch adds an OR condition across multiple fields with ILIKE. Nil or empty search is ignored.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	searchPattern := "%" + *search + "%"

	for i, field := range fields {
		col := b.projection.Column(field)
		clauses[i] = fmt.Sprintf("%s ILIKE $%%d", col)
		args[i] = searchPattern
	}

	b.conditions = append(b.conditions, condition{
		clause: "(" + strings.Join(clauses, " OR ") + ")",
		args:   args,
	})
	return b
}

func (b *Builder) buildOrderBy() string {
	order := b.order
	if len(order) == 0 {
		if b.defaultSort.Field == "" {
			return ""
		}
		order = []SortField{b.defaultSort}
	}

	clauses := make([]string, len(order))
	for i, f := range order {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		clauses[i] = fmt.Sprintf("%s %s", b.projection.Column(f.Field), dir)
	}

	return " ORDER BY " + strings.Join(clauses, ", ")
}

func (b *Builder) buildWhere(startParam int) (string, []any, int) {
	if len(b.conditions) == 0 {
		return "", nil, startParam
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	paramIdx := startParam

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", paramIdx), 1)
			args = append(args, arg)
			paramIdx++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, paramIdx
}
