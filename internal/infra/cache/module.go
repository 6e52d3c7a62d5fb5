package cache

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New provides the cart cache. Without a redis section every read misses and goes to storage.
func New(params Params) service.CartCache {
	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("Redis not configured, cart cache disabled")

		return NewNoopCartCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional at runtime; storage keeps serving reads if redis is down
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, cart reads will fall back to storage",
					slog.String("addr", redisCfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			if err := client.Close(); err != nil {
				return errors.Wrap(err, "failed to close redis client")
			}

			return nil
		},
	})

	return NewRedisCartCache(client, redisCfg.KeyPrefix, params.Config.Cart.CacheTTL)
}

// Module provides the cart cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
