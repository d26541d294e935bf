package worker

import (
	"context"
	"log/slog"
	"time"

	"splitpay/internal/pkg/config"
	"splitpay/internal/usecase/commands"
)

// Reaper periodically sweeps claims whose TTL lapsed without any request
// touching their order. The lazy expiry on the hot paths keeps availability
// correct on its own; the reaper just bounds how long stale rows linger.
type Reaper struct {
	claimCommands commands.ClaimCommands
	interval      time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewReaper(claimCommands commands.ClaimCommands, cfg config.ReaperConfig) *Reaper {
	return &Reaper{
		claimCommands: claimCommands,
		interval:      cfg.Interval,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

func (r *Reaper) Start() {
	go r.run()
}

func (r *Reaper) Stop(ctx context.Context) error {
	close(r.stop)
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Reaper) run() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("claim reaper started", "interval", r.interval.String())

	for {
		select {
		case <-r.stop:
			slog.Info("claim reaper stopped")
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.interval)
			swept, err := r.claimCommands.SweepExpiredClaims(ctx)
			cancel()
			if err != nil {
				slog.Error("claim sweep failed", "error", err.Error())
				continue
			}
			if swept > 0 {
				slog.Info("claim sweep completed", "orders_swept", swept)
			}
		}
	}
}
