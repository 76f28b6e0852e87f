package address

import (
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	menucmd "lavkabot/apps/bot/commands/menu"
	"lavkabot/internal/flow"
	"lavkabot/internal/menu"
	"lavkabot/internal/texts"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/tgrouter"
)

var Module = fx.Provide(New)

const (
	StatePrefix  = "address."
	StateAddress = "address.address"
	StateComment = "address.comment"
	StatePayment = "address.payment"
)

const maxAddressLen = 200

var steps = flow.New(
	flow.Step{Name: StateAddress, Reprompt: texts.AskAddress},
	flow.Step{Name: StateComment, Reprompt: texts.AskCourierNote},
	flow.Step{Name: StatePayment, Reprompt: texts.OnlyPaymentLeft},
)

type Params struct {
	fx.In
	Logger  logger.Logger
	MenuSvc menu.Service
}

type Commands struct {
	logger  logger.Logger
	menuSvc menu.Service
}

func New(p Params) Commands {
	return Commands{
		logger:  p.Logger,
		menuSvc: p.MenuSvc,
	}
}

// Begin enters the flow from the Delivery_address checkout button.
func (c *Commands) Begin(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID

	if err := ctx.UpdateState(steps.First().Name, nil); err != nil {
		c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
		return
	}
	menucmd.AnswerCallback(ctx, "")
	menucmd.RemoveReplyKeyboard(ctx, chatID, texts.AskAddress)
}

// Step serves every address.* state.
func (c *Commands) Step(ctx *tgrouter.Ctx) {
	msg := ctx.Update().Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if strings.EqualFold(text, texts.BackWord) {
		c.stepBack(ctx, chatID)
		return
	}

	switch ctx.StateName() {
	case StateAddress:
		if msg.Text == "" {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.AddressNotText))
			return
		}
		if utf8.RuneCountInString(text) > maxAddressLen {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.AddressTooLong))
			return
		}
		next, _ := steps.Next(StateAddress)
		if err := ctx.UpdateState(next.Name, map[string]string{"address": text}); err != nil {
			c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
			return
		}
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, next.Reprompt))
	case StateComment:
		if msg.Text == "" || utf8.RuneCountInString(text) > maxAddressLen {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.AddressTooLong))
			return
		}
		next, _ := steps.Next(StateComment)
		if err := ctx.UpdateState(next.Name, map[string]string{
			"address": ctx.StateValue("address"),
			"comment": text,
		}); err != nil {
			c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
			return
		}
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, next.Reprompt))
	case StatePayment:
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.OnlyPaymentLeft))
	}
}

func (c *Commands) stepBack(ctx *tgrouter.Ctx, chatID int64) {
	prev, ok := steps.Prev(ctx.StateName())
	if !ok {
		// Backing out of the first step leaves the flow entirely.
		if err := ctx.ClearState(); err != nil {
			c.logger.Error(ctx.Context, "failed to clear state", zap.Error(err))
		}
		menucmd.RemoveReplyKeyboard(ctx, chatID, texts.GoingHome)

		view, err := c.menuSvc.Render(ctx.Context, menu.Home{}, ctx.Update().SentFrom().ID)
		if err != nil {
			c.logger.Error(ctx.Context, "failed to render home", zap.Error(err))
			return
		}
		menucmd.SendView(ctx, chatID, view)
		return
	}

	if err := ctx.UpdateState(prev.Name, nil); err != nil {
		c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
		return
	}
	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.BackToStep+"\n"+prev.Reprompt))
}
