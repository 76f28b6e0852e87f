package main

import (
	"lavkabot/apps/bot"
	"lavkabot/apps/gateway"
	"lavkabot/cmd/bot/router"
	"lavkabot/internal"
	"lavkabot/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		gateway.Module,
		router.Module,
		pkg.Module,
		internal.Module,
		bot.Module,
	).Run()
}
