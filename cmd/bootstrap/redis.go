package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"splitpay/internal/pkg/config"

	rd "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis connects the rate-limit store. The limiter fails open, so an
// unreachable Redis is logged but never blocks startup.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *rd.Client {
	client := rd.NewClient(&rd.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redisに接続できません。レート制限は無効化されます", "addr", cfg.Redis.Addr, "error", err.Error())
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
