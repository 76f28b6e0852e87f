package categoryrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/structs"
	"lavkabot/pkg/db"
	"lavkabot/pkg/logger"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		DB     db.Querier
	}

	Repo interface {
		GetAll(ctx context.Context) ([]structs.Category, error)
		GetByID(ctx context.Context, id int64) (structs.Category, error)
		CreateIfEmpty(ctx context.Context, names []string) error
	}

	repo struct {
		logger logger.Logger
		db     db.Querier
	}
)

func New(p Params) Repo {
	return &repo{
		logger: p.Logger,
		db:     p.DB,
	}
}

func (r *repo) GetAll(ctx context.Context) ([]structs.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM category
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error(ctx, "failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []structs.Category
	for rows.Next() {
		var c structs.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *repo) GetByID(ctx context.Context, id int64) (structs.Category, error) {
	var c structs.Category
	query := `
		SELECT id, name, created_at, updated_at
		FROM category
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.Category{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get category", zap.Error(err))
		return structs.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// CreateIfEmpty seeds the category list once; an already-populated table
// is left untouched.
func (r *repo) CreateIfEmpty(ctx context.Context, names []string) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM category`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	r.logger.Info(ctx, "Seeding categories", zap.Strings("names", names))
	for _, name := range names {
		if _, err := r.db.Exec(ctx, `INSERT INTO category(name) VALUES ($1)`, name); err != nil {
			r.logger.Error(ctx, "failed to seed category", zap.String("name", name), zap.Error(err))
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	return nil
}
