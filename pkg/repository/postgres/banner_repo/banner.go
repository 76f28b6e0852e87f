package bannerrepo

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
		GetByName(ctx context.Context, name string) (structs.Banner, error)
		GetAll(ctx context.Context) ([]structs.Banner, error)
		UpdateImage(ctx context.Context, name, image string) error
		SeedDescriptions(ctx context.Context, descriptions map[string]string) error
		BackfillImages(ctx context.Context, defaultImage string) error
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

func (r *repo) GetByName(ctx context.Context, name string) (structs.Banner, error) {
	var b structs.Banner
	query := `
		SELECT id, name, COALESCE(image, ''), COALESCE(description, ''), created_at, updated_at
		FROM banner
		WHERE name = $1
	`
	err := r.db.QueryRow(ctx, query, name).Scan(
		&b.ID, &b.Name, &b.Image, &b.Description, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.Banner{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get banner", zap.String("name", name), zap.Error(err))
		return structs.Banner{}, fmt.Errorf("get banner %q: %w", name, err)
	}
	return b, nil
}

func (r *repo) GetAll(ctx context.Context) ([]structs.Banner, error) {
	query := `
		SELECT id, name, COALESCE(image, ''), COALESCE(description, ''), created_at, updated_at
		FROM banner
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error(ctx, "failed to list banners", zap.Error(err))
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	var banners []structs.Banner
	for rows.Next() {
		var b structs.Banner
		if err := rows.Scan(&b.ID, &b.Name, &b.Image, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func (r *repo) UpdateImage(ctx context.Context, name, image string) error {
	r.logger.Info(ctx, "Update banner image", zap.String("name", name))
	tag, err := r.db.Exec(ctx, `UPDATE banner SET image = $2, updated_at = NOW() WHERE name = $1`, name, image)
	if err != nil {
		r.logger.Error(ctx, "failed to update banner image", zap.Error(err))
		return fmt.Errorf("update banner %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNotFound
	}
	return nil
}

// SeedDescriptions inserts the fixed banner set once; a populated table is
// left untouched.
func (r *repo) SeedDescriptions(ctx context.Context, descriptions map[string]string) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM banner`).Scan(&count); err != nil {
		return fmt.Errorf("count banners: %w", err)
	}
	if count > 0 {
		return nil
	}

	r.logger.Info(ctx, "Seeding banners", zap.Int("count", len(descriptions)))
	for name, description := range descriptions {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO banner(name, description) VALUES ($1, $2)`, name, description); err != nil {
			r.logger.Error(ctx, "failed to seed banner", zap.String("name", name), zap.Error(err))
			return fmt.Errorf("seed banner %q: %w", name, err)
		}
	}
	return nil
}

func (r *repo) BackfillImages(ctx context.Context, defaultImage string) error {
	_, err := r.db.Exec(ctx, `UPDATE banner SET image = $1 WHERE image IS NULL`, defaultImage)
	if err != nil {
		return fmt.Errorf("backfill banner images: %w", err)
	}
	return nil
}
