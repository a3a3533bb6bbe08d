package scheduler

import (
	"context"
	"log/slog"
	"time"

	"podmerge/internal/domain"
)

// Processor drains one batch of queued merge requests.
type Processor interface {
	ProcessPending(ctx context.Context) (*domain.QueueStats, error)
}

type Scheduler struct {
	processor Processor
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

func NewScheduler(processor Processor, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		processor: processor,
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runBatch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runBatch(ctx)
		}
	}
}

func (s *Scheduler) runBatch(ctx context.Context) {
	batchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.processor.ProcessPending(batchCtx); err != nil {
		s.logger.Error("processing merge queue failed", "error", err)
	}
}
