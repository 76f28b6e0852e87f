package broadcast

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/pkg/logger"
	chatRepo "lavkabot/pkg/repository/postgres/chat_repo"
)

var (
	Module = fx.Provide(New)
)

// Sender is the part of the bot API the broadcast needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type (
	Params struct {
		fx.In
		ChatRepo chatRepo.Repo
		Logger   logger.Logger
	}

	Service interface {
		// SendAll delivers text to every known chat. Blocked bots and dead
		// chats are counted, not fatal.
		SendAll(ctx context.Context, sender Sender, text string) (sent int, failed int, err error)
	}
	service struct {
		chatRepo chatRepo.Repo
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		chatRepo: p.ChatRepo,
		logger:   p.Logger,
	}
}

func (s *service) SendAll(ctx context.Context, sender Sender, text string) (int, int, error) {
	refs, err := s.chatRepo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "->chatRepo.List", zap.Error(err))
		return 0, 0, err
	}

	var sent, failed int
	for _, ref := range refs {
		if _, err := sender.Send(tgbotapi.NewMessage(ref.ChatID, text)); err != nil {
			failed++
			s.logger.Warn(ctx, "broadcast delivery failed",
				zap.Int64("chat_id", ref.ChatID), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, failed, nil
}
