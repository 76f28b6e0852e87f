package internal

import (
	"go.uber.org/fx"

	"lavkabot/internal/banner"
	"lavkabot/internal/branch"
	"lavkabot/internal/broadcast"
	"lavkabot/internal/cart"
	"lavkabot/internal/catalog"
	"lavkabot/internal/menu"
	"lavkabot/internal/seed"
	"lavkabot/internal/user"
)

var Module = fx.Options(
	catalog.Module,
	cart.Module,
	banner.Module,
	branch.Module,
	user.Module,
	broadcast.Module,
	menu.Module,
	seed.Module,
)
