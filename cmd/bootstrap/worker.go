package bootstrap

import (
	"context"

	"splitpay/internal/pkg/config"
	"splitpay/internal/usecase/commands"
	"splitpay/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReaper,
	),
	fx.Invoke(
		StartReaper,
	),
)

func NewReaper(claimCommands commands.ClaimCommands, cfg config.Config) *worker.Reaper {
	return worker.NewReaper(claimCommands, cfg.Reaper)
}

func StartReaper(lc fx.Lifecycle, reaper *worker.Reaper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			reaper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return reaper.Stop(ctx)
		},
	})
}
