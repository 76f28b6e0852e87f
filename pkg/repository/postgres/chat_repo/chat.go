package chatrepo

import (
	"context"
	"fmt"

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
		Save(ctx context.Context, chatID int64) error
		List(ctx context.Context) ([]structs.ChatReference, error)
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

// Save inserts the chat once; repeat starts are a no-op.
func (r *repo) Save(ctx context.Context, chatID int64) error {
	query := `
		INSERT INTO chat_ids(chat_id) VALUES ($1)
		ON CONFLICT (chat_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, chatID); err != nil {
		r.logger.Error(ctx, "failed to save chat id", zap.Int64("chat_id", chatID), zap.Error(err))
		return fmt.Errorf("save chat id %d: %w", chatID, err)
	}
	return nil
}

func (r *repo) List(ctx context.Context) ([]structs.ChatReference, error) {
	rows, err := r.db.Query(ctx, `SELECT id, chat_id FROM chat_ids ORDER BY id`)
	if err != nil {
		r.logger.Error(ctx, "failed to list chat ids", zap.Error(err))
		return nil, fmt.Errorf("list chat ids: %w", err)
	}
	defer rows.Close()

	var refs []structs.ChatReference
	for rows.Next() {
		var ref structs.ChatReference
		if err := rows.Scan(&ref.ID, &ref.ChatID); err != nil {
			return nil, fmt.Errorf("scan chat id: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
