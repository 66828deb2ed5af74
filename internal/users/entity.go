package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/scaffold/internal/entities"
	"github.com/JaimeStill/scaffold/pkg/decode"
	"github.com/JaimeStill/scaffold/pkg/pagination"
)

// EntityName is the admin name of the user entity.
const EntityName = "Users"

type entity struct {
	sys    System
	schema entities.SchemaFunc
}

// NewEntity exposes sys to the admin area.
func NewEntity(sys System, schema entities.SchemaFunc) entities.Entity {
	return &entity{sys: sys, schema: schema}
}

func (e *entity) Name() string {
	return EntityName
}

func (e *entity) Fields(ctx context.Context) ([]entities.Field, error) {
	return e.schema(ctx)
}

func (e *entity) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[entities.Record], error) {
	result, err := e.sys.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return entities.Page(result, record), nil
}

func (e *entity) Create(ctx context.Context, rec entities.Record) (entities.Record, error) {
	cmd, err := decode.FromMap[CreateCommand](rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrInvalidRecord, err)
	}

	u, err := e.sys.Create(ctx, cmd)
	switch {
	case errors.Is(err, ErrDuplicate):
		return nil, fmt.Errorf("%w: %w", entities.ErrConflict, err)
	case errors.Is(err, ErrInvalidUsername), errors.Is(err, ErrInvalidEmail):
		return nil, fmt.Errorf("%w: %w", entities.ErrInvalidRecord, err)
	case err != nil:
		return nil, err
	}

	return record(*u), nil
}

func record(u User) entities.Record {
	return entities.Record{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}
