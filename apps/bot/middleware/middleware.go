package middleware

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/structs"
	"lavkabot/internal/user"
	"lavkabot/pkg/config"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/tgrouter"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger  logger.Logger
	Config  config.IConfig
	UserSvc user.Service
}

type Middleware interface {
	AccountMw(next tgrouter.Handler) tgrouter.Handler
	AdminMw(next tgrouter.Handler) tgrouter.Handler
}

type mw struct {
	logger   logger.Logger
	userSvc  user.Service
	adminIDs map[int64]bool
}

func New(p Params) Middleware {
	adminIDs := make(map[int64]bool)
	for _, raw := range strings.Split(p.Config.GetString("admin_user_ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		adminIDs[cast.ToInt64(raw)] = true
	}
	return &mw{
		logger:   p.Logger,
		userSvc:  p.UserSvc,
		adminIDs: adminIDs,
	}
}

// AccountMw records the sender before any handler runs and shows the typing
// indicator while the handler works.
func (m *mw) AccountMw(next tgrouter.Handler) tgrouter.Handler {
	return func(c *tgrouter.Ctx) {
		c.Context = m.logger.Context(c.Context)

		from := c.Update().SentFrom()
		err := m.userSvc.Ensure(c.Context, structs.UpsertUser{
			UserID:    from.ID,
			FirstName: from.FirstName,
			LastName:  from.LastName,
		})
		if err != nil {
			m.logger.Error(c.Context, "failed to ensure user", zap.Int64("user_id", from.ID), zap.Error(err))
		}

		_, _ = c.Bot().Request(tgbotapi.NewChatAction(c.Update().FromChat().ID, tgbotapi.ChatTyping))

		next(c)
	}
}

// AdminMw drops updates from non-admins without replying, so the admin
// surface stays invisible to regular users.
func (m *mw) AdminMw(next tgrouter.Handler) tgrouter.Handler {
	return func(c *tgrouter.Ctx) {
		if !m.adminIDs[c.Update().SentFrom().ID] {
			return
		}
		next(c)
	}
}
