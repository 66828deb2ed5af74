package users

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/scaffold/pkg/pagination"
	"github.com/JaimeStill/scaffold/pkg/query"
	"github.com/JaimeStill/scaffold/pkg/repository"
	"github.com/google/uuid"
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
		logger:     logger.With("system", "users"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[User], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Username", "Email")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanUser)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO users(username, email)
		VALUES ($1, $2)
		RETURNING id, username, email, created_at, updated_at`

	u, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Username, cmd.Email}, scanUser)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user created", "id", u.ID, "username", u.Username)
	return &u, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		UPDATE users
		SET email = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, username, email, created_at, updated_at`

	u, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		return repository.QueryOne(ctx, tx, q, []any{id, cmd.Email}, scanUser)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user updated", "id", u.ID)
	return &u, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user deleted", "id", id)
	return nil
}
