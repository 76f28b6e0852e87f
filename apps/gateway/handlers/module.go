package handlers

import (
	"lavkabot/apps/gateway/handlers/branch"
	"lavkabot/apps/gateway/handlers/catalog"
	"lavkabot/apps/gateway/handlers/middleware"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	catalog.Module,
	branch.Module,
)
