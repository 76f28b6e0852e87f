package pkg

import (
	"go.uber.org/fx"

	"lavkabot/pkg/cache"
	"lavkabot/pkg/config"
	"lavkabot/pkg/db"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/migration"
	"lavkabot/pkg/redis"
	"lavkabot/pkg/reply"
	"lavkabot/pkg/repository"
	"lavkabot/pkg/tgrouter"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	migration.Module,
	repository.Module,
	db.Module,
	cache.Module,
	tgrouter.Module,
	redis.Module,
	reply.Module,
)
