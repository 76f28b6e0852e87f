package register

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	menucmd "lavkabot/apps/bot/commands/menu"
	"lavkabot/internal/keyboards"
	"lavkabot/internal/menu"
	"lavkabot/internal/structs"
	"lavkabot/internal/texts"
	"lavkabot/internal/user"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/tgrouter"
)

var Module = fx.Provide(New)

const (
	StateMethod = menucmd.StateRegMethod
	StateManual = "reg.manual"
)

type Params struct {
	fx.In
	Logger  logger.Logger
	MenuSvc menu.Service
	UserSvc user.Service
}

type Commands struct {
	logger  logger.Logger
	menuSvc menu.Service
	userSvc user.Service
}

func New(p Params) Commands {
	return Commands{
		logger:  p.Logger,
		menuSvc: p.MenuSvc,
		userSvc: p.UserSvc,
	}
}

// Method handles the first registration step: share a contact, switch to
// manual entry, confirm a shared number, or back out.
func (c *Commands) Method(ctx *tgrouter.Ctx) {
	msg := ctx.Update().Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	if msg.Contact != nil {
		c.contact(ctx, msg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.EqualFold(text, texts.BackWord):
		c.finish(ctx, chatID, texts.GoingHome)
	case text == texts.ManualPhoneButton:
		if err := ctx.UpdateState(StateManual, nil); err != nil {
			c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
			return
		}
		menucmd.RemoveReplyKeyboard(ctx, chatID, texts.AskPhoneManual)
	case text == texts.ConfirmPhoneButton:
		c.confirm(ctx, msg)
	default:
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.ChooseFromMenu))
	}
}

// Manual handles a typed phone number.
func (c *Commands) Manual(ctx *tgrouter.Ctx) {
	msg := ctx.Update().Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if strings.EqualFold(text, texts.BackWord) {
		// Back to the method choice, re-rendering its screen.
		if err := ctx.UpdateState(StateMethod, nil); err != nil {
			c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
			return
		}
		view, err := c.menuSvc.Render(ctx.Context, menu.Registration{}, msg.From.ID)
		if err != nil {
			c.logger.Error(ctx.Context, "failed to render registration", zap.Error(err))
			return
		}
		menucmd.SendView(ctx, chatID, view)
		return
	}

	if err := c.userSvc.ValidatePhone(text); err != nil {
		menucmd.RemoveReplyKeyboard(ctx, chatID, texts.PhoneInvalid)
		return
	}

	err := c.userSvc.Register(ctx.Context, structs.UpsertUser{
		UserID:    msg.From.ID,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		Phone:     text,
	})
	if err != nil {
		c.logger.Error(ctx.Context, "failed to register user", zap.Error(err))
		return
	}
	c.finish(ctx, chatID, texts.PhoneConfirmed)
}

func (c *Commands) contact(ctx *tgrouter.Ctx, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	// Forwarded contact cards belong to other people, only the sender's
	// own card counts.
	if msg.Contact.UserID != msg.From.ID {
		reply := tgbotapi.NewMessage(chatID, texts.ForeignContact)
		reply.ReplyMarkup = keyboards.ContactRetry()
		_, _ = ctx.Bot().Send(reply)
		return
	}

	phone := msg.Contact.PhoneNumber
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}
	if err := ctx.UpdateStateData(map[string]string{"phone": phone, "auto": "1"}); err != nil {
		c.logger.Error(ctx.Context, "failed to save state data", zap.Error(err))
		return
	}

	reply := tgbotapi.NewMessage(chatID, fmt.Sprintf(texts.PhoneReceived, phone))
	reply.ReplyMarkup = keyboards.ConfirmPhone()
	_, _ = ctx.Bot().Send(reply)
}

func (c *Commands) confirm(ctx *tgrouter.Ctx, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if ctx.StateValue("auto") == "" {
		// Confirm pressed without a shared contact first.
		c.finish(ctx, chatID, texts.NothingToConfirm)
		return
	}

	err := c.userSvc.Register(ctx.Context, structs.UpsertUser{
		UserID:    msg.From.ID,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		Phone:     ctx.StateValue("phone"),
	})
	if err != nil {
		c.logger.Error(ctx.Context, "failed to register user", zap.Error(err))
		return
	}
	c.finish(ctx, chatID, texts.PhoneConfirmed)
}

// finish clears the conversation, drops the reply keyboard and lands the
// user back on the home screen.
func (c *Commands) finish(ctx *tgrouter.Ctx, chatID int64, note string) {
	if err := ctx.ClearState(); err != nil {
		c.logger.Error(ctx.Context, "failed to clear state", zap.Error(err))
	}
	menucmd.RemoveReplyKeyboard(ctx, chatID, note)

	view, err := c.menuSvc.Render(ctx.Context, menu.Home{}, ctx.Update().SentFrom().ID)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to render home", zap.Error(err))
		return
	}
	menucmd.SendView(ctx, chatID, view)
}
