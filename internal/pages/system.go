// Package pages stores and serves slug-addressed content pages.
package pages

import (
	"context"

	"github.com/JaimeStill/scaffold/pkg/pagination"
)

// System defines the persistence operations for pages.
type System interface {
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Page], error)
	Find(ctx context.Context, slug string) (*Page, error)
	Create(ctx context.Context, cmd CreateCommand) (*Page, error)
	Update(ctx context.Context, slug string, cmd UpdateCommand) (*Page, error)
	Delete(ctx context.Context, slug string) error
}
