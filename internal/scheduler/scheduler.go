package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type lockReaper interface {
	CleanupExpiredLocks(ctx context.Context) (int, error)
}

// Scheduler runs the expiry sweep on a fixed interval, independent of
// user traffic. The sweep is the sole reclaiming mechanism for
// abandoned holds.
type Scheduler struct {
	reaper   lockReaper
	interval time.Duration
	logger   logger.Logger
}

func New(
	reaper lockReaper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reaper:   reaper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("lock sweep started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("lock sweep stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reclaimed, err := s.reaper.CleanupExpiredLocks(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired locks",
			logger.String("error", err.Error()),
		)
		return
	}

	if reclaimed > 0 {
		s.logger.Info("expired locks reclaimed",
			logger.Int("count", reclaimed),
		)
	}
}
