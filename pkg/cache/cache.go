package cache

import (
	"context"
	"time"

	"go.uber.org/fx"

	"lavkabot/pkg/redis"
)

var Module = fx.Provide(New)

// ErrNotFound is returned when the key is absent or expired.
var ErrNotFound = redis.ErrNotFound

type (
	Params struct {
		fx.In
		Redis redis.Client
	}

	// ICache is a small TTL object cache in front of the catalog reads.
	ICache interface {
		SaveObj(ctx context.Context, key string, value any) error
		GetObj(ctx context.Context, key string, value any) error
		Delete(ctx context.Context, key string) error
	}

	cache struct {
		redis redis.Client
		ttl   time.Duration
	}
)

const defaultTTL = 5 * time.Minute

func New(p Params) ICache {
	return &cache{
		redis: p.Redis,
		ttl:   defaultTTL,
	}
}

func (c *cache) SaveObj(ctx context.Context, key string, value any) error {
	return c.redis.SaveObj(ctx, "cache."+key, value, c.ttl)
}

func (c *cache) GetObj(ctx context.Context, key string, value any) error {
	return c.redis.FindObj(ctx, "cache."+key, value)
}

func (c *cache) Delete(ctx context.Context, key string) error {
	return c.redis.Delete(ctx, "cache."+key)
}
