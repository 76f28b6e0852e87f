package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"

	addresscmd "lavkabot/apps/bot/commands/address"
	admincmd "lavkabot/apps/bot/commands/admin"
	menucmd "lavkabot/apps/bot/commands/menu"
	registercmd "lavkabot/apps/bot/commands/register"
	"lavkabot/apps/bot/middleware"
	"lavkabot/internal/texts"
	"lavkabot/pkg/config"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/tgrouter"
	"lavkabot/pkg/tgrouter/interfaces"
)

var Module = fx.Options(
	menucmd.Module,
	registercmd.Module,
	addresscmd.Module,
	admincmd.Module,

	middleware.Module,

	fx.Invoke(NewBot),
)

type Params struct {
	fx.In
	fx.Lifecycle

	Logger     logger.Logger
	Config     config.IConfig
	Factory    tgrouter.RouterFactory
	State      interfaces.State
	Middleware middleware.Middleware

	MenuCmd     menucmd.Commands
	RegisterCmd registercmd.Commands
	AddressCmd  addresscmd.Commands
	AdminCmd    admincmd.Commands
}

func NewBot(p Params) error {
	token := p.Config.GetString("bot_token_lavka")
	if token == "" {
		return fmt.Errorf("telegram bot token is not set")
	}
	tb, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("failed to initialize bot: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	registerClientCommands(tb)

	r := p.Factory(tb, tgrouter.WithPoolSize(10), tgrouter.WithState(p.State))

	bot := r.Group()
	bot.Use(p.Middleware.AccountMw)

	tgrouter.On(bot, tgrouter.Cmd("start"), p.MenuCmd.Start)
	tgrouter.On(bot, tgrouter.MenuCallback(), p.MenuCmd.Navigate)
	tgrouter.On(bot, tgrouter.CallbackPrefix("Delivery_"), p.AddressCmd.Begin)

	// registration
	tgrouter.On(bot, tgrouter.State(registercmd.StateMethod), p.RegisterCmd.Method)
	tgrouter.On(bot, tgrouter.State(registercmd.StateManual), p.RegisterCmd.Manual)

	// delivery address
	tgrouter.On(bot, tgrouter.StatePrefix(addresscmd.StatePrefix), p.AddressCmd.Step)

	admin := bot.Group()
	admin.Use(p.Middleware.AdminMw)

	tgrouter.On(admin, tgrouter.Cmd("admin"), p.AdminCmd.Panel)
	tgrouter.On(admin, tgrouter.Text(texts.AddProductButton), p.AdminCmd.AddProduct)
	tgrouter.On(admin, tgrouter.Text(texts.AssortmentButton), p.AdminCmd.Assortment)
	tgrouter.On(admin, tgrouter.Text(texts.ChangeBannerButton), p.AdminCmd.AskBanner)
	tgrouter.On(admin, tgrouter.Text(texts.BroadcastButton), p.AdminCmd.AskBroadcast)
	tgrouter.On(admin, tgrouter.CallbackPrefix("category_"), p.AdminCmd.ByCategory)
	tgrouter.On(admin, tgrouter.CallbackPrefix("delete_"), p.AdminCmd.Delete)
	tgrouter.On(admin, tgrouter.CallbackPrefix("change_"), p.AdminCmd.Change)

	// product flow
	tgrouter.On(admin, tgrouter.State(admincmd.StateName), p.AdminCmd.Name)
	tgrouter.On(admin, tgrouter.State(admincmd.StateDescription), p.AdminCmd.Description)
	tgrouter.On(admin, tgrouter.State(admincmd.StateCategory), p.AdminCmd.Category)
	tgrouter.On(admin, tgrouter.State(admincmd.StatePrice), p.AdminCmd.Price)
	tgrouter.On(admin, tgrouter.State(admincmd.StateImage), p.AdminCmd.Image)

	// banner and broadcast flows
	tgrouter.On(admin, tgrouter.State(admincmd.StateBannerImage), p.AdminCmd.BannerImage)
	tgrouter.On(admin, tgrouter.State(admincmd.StateBroadcastText), p.AdminCmd.SendBroadcast)

	go r.ListenUpdate(ctx)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info(ctx, "bot started!")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			r.Shutdown(ctx, cancel)
			p.Logger.Info(ctx, "bot stopped!")
			return nil
		},
	})

	return nil
}

func registerClientCommands(tb *tgbotapi.BotAPI) {
	cfg := tgbotapi.NewSetMyCommands([]tgbotapi.BotCommand{
		{Command: "start", Description: "Перезапустить бота"},
	}...)

	_, _ = tb.Request(cfg)
}
