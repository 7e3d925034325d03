package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/service/reconcile"
)

type counterReconciler interface {
	RecomputeCounters(ctx context.Context) (reconcile.Result, error)
}

// Scheduler runs counter reconciliation on a cron schedule. Overlapping runs
// are skipped.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
}

// NewScheduler registers the reconciliation job. The schedule uses the
// standard five-field cron syntax.
func NewScheduler(logger *slog.Logger, cfg config.ReconcileConfig, job counterReconciler) (*Scheduler, error) {
	log := logger.With("component", "scheduler")
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DiscardLogger),
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	_, err := c.AddFunc(cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		start := time.Now()
		res, err := job.RecomputeCounters(ctx)
		if err != nil {
			log.ErrorContext(ctx, "scheduled reconciliation failed", slog.String("error", err.Error()))
			return
		}
		log.InfoContext(ctx, "scheduled reconciliation completed",
			slog.Int64("jobs_corrected", res.JobsCorrected),
			slog.Int64("users_corrected", res.UsersCorrected),
			slog.Duration("duration", time.Since(start)))
	})
	if err != nil {
		return nil, fmt.Errorf("schedule reconciliation %q: %w", cfg.Schedule, err)
	}

	return &Scheduler{cron: c, log: log}, nil
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop prevents new runs and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out; a reconciliation may still be running")
	}
}
