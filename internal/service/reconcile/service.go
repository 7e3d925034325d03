// Package reconcile repairs the denormalized application counters by
// recomputing them from the application rows.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/metrics"
)

type counterRepo interface {
	RecomputeJobCounters(ctx context.Context) (int64, error)
	RecomputeUserCounters(ctx context.Context) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result reports how many rows had drifted and were corrected.
type Result struct {
	JobsCorrected  int64
	UsersCorrected int64
}

// Service recomputes counters.
type Service struct {
	log      *slog.Logger
	counters counterRepo
	tx       txManager
}

// NewService creates a reconcile service.
func NewService(log *slog.Logger, counters counterRepo, tx txManager) *Service {
	return &Service{
		log:      log.With("service", "reconcile"),
		counters: counters,
		tx:       tx,
	}
}

// RecomputeCounters rewrites job and user counters that no longer match the
// application rows. Both passes run in one transaction.
func (s *Service) RecomputeCounters(ctx context.Context) (Result, error) {
	var res Result

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		jobs, err := s.counters.RecomputeJobCounters(ctx)
		if err != nil {
			return err
		}
		users, err := s.counters.RecomputeUserCounters(ctx)
		if err != nil {
			return err
		}
		res = Result{JobsCorrected: jobs, UsersCorrected: users}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("reconcile.RecomputeCounters: %w", err)
	}

	metrics.CountersReconciled("jobs", res.JobsCorrected)
	metrics.CountersReconciled("users", res.UsersCorrected)

	level := slog.LevelInfo
	if res.JobsCorrected > 0 || res.UsersCorrected > 0 {
		level = slog.LevelWarn
	}
	s.log.Log(ctx, level, "counters reconciled",
		slog.Int64("jobs_corrected", res.JobsCorrected),
		slog.Int64("users_corrected", res.UsersCorrected))

	return res, nil
}
