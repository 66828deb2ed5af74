// Package entities exposes persisted types to the admin area under
// capitalized names, with their column schema introspected from the database.
package entities

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JaimeStill/scaffold/pkg/pagination"
)

var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrInvalidRecord = errors.New("invalid record")
	ErrConflict      = errors.New("record conflicts with existing data")
)

// MapHTTPStatus maps entity errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownEntity):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRecord):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Record is a loosely typed row keyed by column name.
type Record map[string]any

// Entity is a persisted type the admin area can list and create.
type Entity interface {
	Name() string
	Fields(ctx context.Context) ([]Field, error)
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Record], error)
	Create(ctx context.Context, rec Record) (Record, error)
}

// Page projects a typed page of results into records, keeping its metadata.
func Page[T any](result *pagination.PageResult[T], project func(T) Record) *pagination.PageResult[Record] {
	records := make([]Record, len(result.Data))
	for i, item := range result.Data {
		records[i] = project(item)
	}
	page := pagination.NewPageResult(records, result.Total, result.Page, result.PageSize)
	return &page
}

// Capitalize title-cases an admin type segment, e.g. "pages" to "Pages".
func Capitalize(s string) string {
	// cases.Caser is not safe for concurrent use.
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// Registry resolves entities by capitalized name.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]Entity
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entities: make(map[string]Entity)}
}

// Register adds e under its name, replacing any entity with the same name.
func (r *Registry) Register(e Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[e.Name()] = e
}

// Lookup resolves an admin type segment to an entity.
func (r *Registry) Lookup(typ string) (Entity, error) {
	name := Capitalize(typ)

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, name)
	}
	return e, nil
}

// Names returns registered entity names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
