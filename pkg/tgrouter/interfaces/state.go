package interfaces

import (
	"context"
	"errors"
)

// ErrStateNotFound is returned by state stores when no row exists for the
// (user, chat) pair.
var ErrStateNotFound = errors.New("state not found")

type State interface {
	Set(ctx context.Context, userId int, chatId int, state string, data map[string]string) error
	Get(ctx context.Context, userId int, chatId int) (string, map[string]string, error)
	Delete(ctx context.Context, userId int, chatId int) error
	UpdateData(ctx context.Context, userId, chatId int, data map[string]string) error
}
