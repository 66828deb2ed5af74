// Package users stores user accounts and serves them as JSON.
package users

import (
	"context"

	"github.com/JaimeStill/scaffold/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the persistence operations for users.
type System interface {
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[User], error)
	Find(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, cmd CreateCommand) (*User, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
