package cartrepo

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
		GetLine(ctx context.Context, userID, productID int64) (structs.CartLine, error)
		Insert(ctx context.Context, userID, productID int64) error
		SetQuantity(ctx context.Context, userID, productID int64, quantity int) error
		DeleteLine(ctx context.Context, userID, productID int64) error
		ListByUser(ctx context.Context, userID int64) ([]structs.CartLine, error)
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

func (r *repo) GetLine(ctx context.Context, userID, productID int64) (structs.CartLine, error) {
	var line structs.CartLine
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart
		WHERE user_id = $1 AND product_id = $2
	`
	err := r.db.QueryRow(ctx, query, userID, productID).Scan(
		&line.ID, &line.UserID, &line.ProductID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.CartLine{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get cart line", zap.Error(err))
		return structs.CartLine{}, fmt.Errorf("get cart line: %w", err)
	}
	return line, nil
}

func (r *repo) Insert(ctx context.Context, userID, productID int64) error {
	r.logger.Info(ctx, "Insert cart line",
		zap.Int64("user_id", userID), zap.Int64("product_id", productID))
	query := `
		INSERT INTO cart(user_id, product_id, quantity) VALUES ($1, $2, 1)
	`
	if _, err := r.db.Exec(ctx, query, userID, productID); err != nil {
		r.logger.Error(ctx, "failed to insert cart line", zap.Error(err))
		return fmt.Errorf("insert cart line: %w", err)
	}
	return nil
}

func (r *repo) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	query := `
		UPDATE cart SET quantity = $3, updated_at = NOW()
		WHERE user_id = $1 AND product_id = $2
	`
	tag, err := r.db.Exec(ctx, query, userID, productID, quantity)
	if err != nil {
		r.logger.Error(ctx, "failed to set cart quantity", zap.Error(err))
		return fmt.Errorf("set cart quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNotFound
	}
	return nil
}

func (r *repo) DeleteLine(ctx context.Context, userID, productID int64) error {
	r.logger.Info(ctx, "Delete cart line",
		zap.Int64("user_id", userID), zap.Int64("product_id", productID))
	query := `
		DELETE FROM cart WHERE user_id = $1 AND product_id = $2
	`
	if _, err := r.db.Exec(ctx, query, userID, productID); err != nil {
		r.logger.Error(ctx, "failed to delete cart line", zap.Error(err))
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]structs.CartLine, error) {
	query := `
		SELECT
			c.id,
			c.user_id,
			c.product_id,
			c.quantity,
			c.created_at,
			c.updated_at,
			p.id,
			p.name,
			p.description,
			p.price,
			p.image,
			p.category_id
		FROM cart c
		JOIN product p ON c.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY c.id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error(ctx, "failed to list cart", zap.Error(err))
		return nil, fmt.Errorf("list cart for user %d: %w", userID, err)
	}
	defer rows.Close()

	var lines []structs.CartLine
	for rows.Next() {
		var l structs.CartLine
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.ProductID,
			&l.Quantity,
			&l.CreatedAt,
			&l.UpdatedAt,
			&l.Product.ID,
			&l.Product.Name,
			&l.Product.Description,
			&l.Product.Price,
			&l.Product.Image,
			&l.Product.CategoryID,
		); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
