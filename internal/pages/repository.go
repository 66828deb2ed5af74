package pages

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/scaffold/pkg/pagination"
	"github.com/JaimeStill/scaffold/pkg/query"
	"github.com/JaimeStill/scaffold/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a System backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "pages"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Page], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Content")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanPage)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, slug string) (*Page, error) {
	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals("Slug", slug).
		Build()

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Page, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO pages(slug, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, slug, title, content, created_at, updated_at`

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Page, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Slug, cmd.Title, cmd.Content}, scanPage)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("page created", "id", p.ID, "slug", p.Slug)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, slug string, cmd UpdateCommand) (*Page, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		UPDATE pages
		SET title = $2, content = $3, updated_at = NOW()
		WHERE slug = $1
		RETURNING id, slug, title, content, created_at, updated_at`

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Page, error) {
		return repository.QueryOne(ctx, tx, q, []any{slug, cmd.Title, cmd.Content}, scanPage)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("page updated", "id", p.ID, "slug", p.Slug)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, slug string) error {
	q := `DELETE FROM pages WHERE slug = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, slug); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("page deleted", "slug", slug)
	return nil
}
