package branchrepo

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
		ReplaceAll(ctx context.Context, branches []structs.Branch) error
		GetAll(ctx context.Context) ([]structs.Branch, error)
		GetByName(ctx context.Context, name string) (structs.Branch, error)
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

const branchColumns = `id, branch_id, name, address, COALESCE(phone, ''), COALESCE(description, ''), COALESCE(image, ''), created_at, updated_at`

// ReplaceAll clears the table and reinserts the static set in one
// transaction, so the table always mirrors the current configuration.
func (r *repo) ReplaceAll(ctx context.Context, branches []structs.Branch) error {
	r.logger.Info(ctx, "Reseeding branches", zap.Int("count", len(branches)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin branch reseed: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM branches`); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("clear branches: %w", err)
	}

	for _, b := range branches {
		_, err := tx.Exec(ctx, `
			INSERT INTO branches(branch_id, name, address, phone, description, image)
			VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		`, b.BranchID, b.Name, b.Address, b.Phone, b.Description, b.Image)
		if err != nil {
			_ = tx.Rollback(ctx)
			r.logger.Error(ctx, "failed to insert branch", zap.String("name", b.Name), zap.Error(err))
			return fmt.Errorf("insert branch %q: %w", b.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit branch reseed: %w", err)
	}
	return nil
}

func (r *repo) GetAll(ctx context.Context) ([]structs.Branch, error) {
	rows, err := r.db.Query(ctx, `SELECT `+branchColumns+` FROM branches ORDER BY id`)
	if err != nil {
		r.logger.Error(ctx, "failed to list branches", zap.Error(err))
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var branches []structs.Branch
	for rows.Next() {
		var b structs.Branch
		if err := rows.Scan(
			&b.ID, &b.BranchID, &b.Name, &b.Address, &b.Phone, &b.Description, &b.Image,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *repo) GetByName(ctx context.Context, name string) (structs.Branch, error) {
	var b structs.Branch
	err := r.db.QueryRow(ctx, `SELECT `+branchColumns+` FROM branches WHERE name = $1`, name).Scan(
		&b.ID, &b.BranchID, &b.Name, &b.Address, &b.Phone, &b.Description, &b.Image,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.Branch{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get branch", zap.String("name", name), zap.Error(err))
		return structs.Branch{}, fmt.Errorf("get branch %q: %w", name, err)
	}
	return b, nil
}
