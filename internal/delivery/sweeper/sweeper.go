// Package sweeper runs the periodic expired-session sweep.
package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/domain/lifecycle"
	"backoffice/internal/usecase"

	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

type sweeper struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
	enabled   bool
	interval  time.Duration

	done     chan struct{}
	stopOnce sync.Once
}

// NewSweeper creates the sweeper delivery. It is registered even when disabled and then
// returns from Serve immediately.
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	s := newSweeper(params.SessionUC, params.Logger, params.Cfg.SessionSweep)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newSweeper(sessionUC usecase.SessionUsecase, logger *slog.Logger, cfg *config.SessionSweepConfig) *sweeper {
	s := &sweeper{
		sessionUC: sessionUC,
		logger:    logger,
		interval:  config.DefaultSessionSweepInterval,
		done:      make(chan struct{}),
	}
	if cfg != nil {
		s.enabled = cfg.Enabled
		if cfg.Interval > 0 {
			s.interval = cfg.Interval
		}
	}

	return s
}

// Serve sweeps once immediately and then on every tick until stopped or ctx ends.
// A sweep never overlaps the next one; a slow sweep delays the following tick.
func (s *sweeper) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Session sweeper disabled")

		return nil
	}

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := s.sessionUC.SweepExpired(sweepCtx); err != nil {
		s.logger.Error("Session sweep failed", slog.Any("error", err))
	}
}

func (s *sweeper) stop(context.Context) error {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping session sweeper")
		close(s.done)
	})

	return nil
}
