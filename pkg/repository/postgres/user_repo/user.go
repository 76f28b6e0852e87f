package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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
		GetByUserID(ctx context.Context, userID int64) (structs.User, error)
		Create(ctx context.Context, req structs.UpsertUser) error
		SetPhone(ctx context.Context, userID int64, phone string) error
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

func (r *repo) GetByUserID(ctx context.Context, userID int64) (structs.User, error) {
	var u structs.User
	query := `
		SELECT id, user_id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(phone, ''), created_at, updated_at
		FROM users
		WHERE user_id = $1
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&u.ID, &u.UserID, &u.FirstName, &u.LastName, &u.Phone, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.User{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get user", zap.Error(err))
		return structs.User{}, fmt.Errorf("get user %d: %w", userID, err)
	}
	return u, nil
}

func (r *repo) Create(ctx context.Context, req structs.UpsertUser) error {
	r.logger.Info(ctx, "Create user", zap.Int64("user_id", req.UserID))
	query := `
		INSERT INTO users(user_id, first_name, last_name, phone)
		VALUES ($1, $2, $3, NULLIF($4, ''))
	`
	_, err := r.db.Exec(ctx, query, req.UserID, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return structs.ErrUniqueViolation
		}
		r.logger.Error(ctx, "failed to create user", zap.Error(err))
		return fmt.Errorf("create user %d: %w", req.UserID, err)
	}
	return nil
}

func (r *repo) SetPhone(ctx context.Context, userID int64, phone string) error {
	r.logger.Info(ctx, "Set user phone", zap.Int64("user_id", userID))
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET phone = $2, updated_at = NOW() WHERE user_id = $1`, userID, phone)
	if err != nil {
		r.logger.Error(ctx, "failed to set phone", zap.Error(err))
		return fmt.Errorf("set phone for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNotFound
	}
	return nil
}
