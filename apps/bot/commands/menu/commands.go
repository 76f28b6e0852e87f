package menu

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/cart"
	"lavkabot/internal/menu"
	"lavkabot/internal/texts"
	"lavkabot/internal/user"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/tgrouter"
	"lavkabot/pkg/tgrouter/callback"
)

var Module = fx.Provide(New)

// StateRegMethod is the first registration step, entered from the menu.
const StateRegMethod = "reg.method"

type Params struct {
	fx.In
	Logger  logger.Logger
	MenuSvc menu.Service
	CartSvc cart.Service
	UserSvc user.Service
}

type Commands struct {
	logger  logger.Logger
	menuSvc menu.Service
	cartSvc cart.Service
	userSvc user.Service
}

func New(p Params) Commands {
	return Commands{
		logger:  p.Logger,
		menuSvc: p.MenuSvc,
		cartSvc: p.CartSvc,
		userSvc: p.UserSvc,
	}
}

// Start renders the home screen and records the chat for broadcasts.
func (c *Commands) Start(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	c.logger.Info(ctx.Context, "start command", zap.Int64("chat_id", chatID))

	if err := c.userSvc.SaveChat(ctx.Context, chatID); err != nil {
		c.logger.Error(ctx.Context, "failed to save chat", zap.Error(err))
	}

	view, err := c.menuSvc.Render(ctx.Context, menu.Home{}, ctx.Update().SentFrom().ID)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to render home", zap.Error(err))
		return
	}
	SendView(ctx, chatID, view)
}

// Navigate serves every menu:* callback. Cart additions and the registration
// entry point are not plain navigation and take their own paths.
func (c *Commands) Navigate(ctx *tgrouter.Ctx) {
	cq := ctx.Update().CallbackQuery
	cb, err := callback.Unpack(cq.Data)
	if err != nil {
		c.logger.Warn(ctx.Context, "bad menu callback", zap.String("data", cq.Data), zap.Error(err))
		AnswerCallback(ctx, "")
		return
	}

	userID := ctx.Update().SentFrom().ID

	if cb.MenuName == "add_to_cart" {
		if err := c.cartSvc.Add(ctx.Context, userID, cb.ProductID); err != nil {
			c.logger.Error(ctx.Context, "failed to add to cart", zap.Error(err))
			AnswerCallback(ctx, "")
			return
		}
		AnswerCallback(ctx, texts.AddedToCart)
		return
	}

	screen, err := menu.ScreenFromCallback(cb)
	if err != nil {
		c.logger.Warn(ctx.Context, "unknown screen",
			zap.Int("level", cb.Level), zap.String("menu_name", cb.MenuName))
		AnswerCallback(ctx, texts.ChooseFromMenu)
		return
	}

	view, err := c.menuSvc.Render(ctx.Context, screen, userID)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to render screen", zap.Error(err))
		AnswerCallback(ctx, "")
		return
	}

	if _, ok := screen.(menu.Registration); ok {
		if err := ctx.UpdateState(StateRegMethod, nil); err != nil {
			c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
		}
		// Reply keyboards cannot be attached by editing, send fresh.
		msg := tgbotapi.NewMessage(ctx.Update().FromChat().ID, view.Caption)
		msg.ReplyMarkup = *view.Reply
		_, _ = ctx.Bot().Send(msg)
		AnswerCallback(ctx, "")
		return
	}

	EditView(ctx, cq.Message.Chat.ID, cq.Message.MessageID, view)
	AnswerCallback(ctx, "")
}

// SendView posts a view as a new photo message.
func SendView(ctx *tgrouter.Ctx, chatID int64, view menu.View) {
	msg := tgbotapi.NewPhoto(chatID, fileRef(view.Photo))
	msg.Caption = view.Caption
	msg.ParseMode = tgbotapi.ModeHTML
	if view.Inline != nil {
		msg.ReplyMarkup = *view.Inline
	} else if view.Reply != nil {
		msg.ReplyMarkup = *view.Reply
	}
	_, _ = ctx.Bot().Send(msg)
}

// EditView swaps the media and keyboard of the message the callback came
// from, keeping one screen message per chat.
func EditView(ctx *tgrouter.Ctx, chatID int64, messageID int, view menu.View) {
	media := tgbotapi.NewInputMediaPhoto(fileRef(view.Photo))
	media.Caption = view.Caption
	media.ParseMode = tgbotapi.ModeHTML

	edit := tgbotapi.EditMessageMediaConfig{
		BaseEdit: tgbotapi.BaseEdit{
			ChatID:      chatID,
			MessageID:   messageID,
			ReplyMarkup: view.Inline,
		},
		Media: media,
	}
	// Pressing the same button twice edits the message into itself, which
	// the API reports as an error even though nothing is wrong.
	_, _ = ctx.Bot().Request(edit)
}

func AnswerCallback(ctx *tgrouter.Ctx, text string) {
	cq := ctx.Update().CallbackQuery
	if cq == nil {
		return
	}
	_, _ = ctx.Bot().Request(tgbotapi.NewCallback(cq.ID, text))
}

// RemoveReplyKeyboard sends text and drops any open reply keyboard.
func RemoveReplyKeyboard(ctx *tgrouter.Ctx, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	_, _ = ctx.Bot().Send(msg)
}

// fileRef treats seeded banner URLs and uploaded file ids uniformly.
func fileRef(photo string) tgbotapi.RequestFileData {
	if strings.HasPrefix(photo, "http://") || strings.HasPrefix(photo, "https://") {
		return tgbotapi.FileURL(photo)
	}
	return tgbotapi.FileID(photo)
}
