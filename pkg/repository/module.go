package repository

import (
	"go.uber.org/fx"

	"lavkabot/pkg/repository/postgres"
	"lavkabot/pkg/repository/state"
)

var Module = fx.Options(
	postgres.Module,
	state.Module,
)
