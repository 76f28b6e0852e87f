package productrepo

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
		Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error)
		Update(ctx context.Context, req structs.UpdateProduct) error
		Delete(ctx context.Context, productID int64) error
		GetByID(ctx context.Context, id int64) (structs.Product, error)
		GetByCategory(ctx context.Context, categoryID int64) ([]structs.Product, error)
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

const productColumns = `id, name, description, price, image, category_id, created_at, updated_at`

func (r *repo) Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error) {
	r.logger.Info(ctx, "Create product", zap.Any("req", req))
	var resp structs.Product
	query := `
		INSERT INTO product(name, description, price, image, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns
	err := r.db.QueryRow(ctx, query,
		req.Name, req.Description, req.Price, req.Image, req.CategoryID,
	).Scan(
		&resp.ID,
		&resp.Name,
		&resp.Description,
		&resp.Price,
		&resp.Image,
		&resp.CategoryID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		r.logger.Error(ctx, "failed to create product", zap.Error(err))
		return structs.Product{}, fmt.Errorf("create product: %w", err)
	}
	return resp, nil
}

func (r *repo) Update(ctx context.Context, req structs.UpdateProduct) error {
	r.logger.Info(ctx, "Update product", zap.Int64("id", req.ID))
	query := `
		UPDATE product
		SET name = $2,
			description = $3,
			price = $4,
			image = $5,
			category_id = $6,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		req.ID, req.Name, req.Description, req.Price, req.Image, req.CategoryID,
	)
	if err != nil {
		r.logger.Error(ctx, "failed to update product", zap.Error(err))
		return fmt.Errorf("update product %d: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, productID int64) error {
	r.logger.Info(ctx, "Delete product", zap.Int64("id", productID))
	_, err := r.db.Exec(ctx, `DELETE FROM product WHERE id = $1`, productID)
	if err != nil {
		r.logger.Error(ctx, "failed to delete product", zap.Error(err))
		return fmt.Errorf("delete product %d: %w", productID, err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, id int64) (structs.Product, error) {
	var resp structs.Product
	query := `SELECT ` + productColumns + ` FROM product WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resp.ID,
		&resp.Name,
		&resp.Description,
		&resp.Price,
		&resp.Image,
		&resp.CategoryID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.Product{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get product", zap.Error(err))
		return structs.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return resp, nil
}

func (r *repo) GetByCategory(ctx context.Context, categoryID int64) ([]structs.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE category_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		r.logger.Error(ctx, "failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products by category %d: %w", categoryID, err)
	}
	defer rows.Close()

	var products []structs.Product
	for rows.Next() {
		var p structs.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Image,
			&p.CategoryID,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
