package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// CounterUpdater maintains the denormalized job and user counters as event
// counts: each submission, each entry into accepted or rejected, and each
// applicant withdrawal moves a counter once. All updates run after the
// primary write and are best-effort; the reconcile job rebuilds the same
// counts from the application history.
type CounterUpdater struct {
	log   *slog.Logger
	jobs  jobRepo
	users userRepo
}

// NewCounterUpdater creates a CounterUpdater.
func NewCounterUpdater(logger *slog.Logger, jobs jobRepo, users userRepo) *CounterUpdater {
	return &CounterUpdater{log: logger, jobs: jobs, users: users}
}

// Submitted bumps the job applicant count and the user's application count.
func (c *CounterUpdater) Submitted(ctx context.Context, jobID, userID uuid.UUID) {
	if err := c.jobs.IncrementCounter(ctx, jobID, domain.JobCounterApplicants, 1); err != nil {
		sideEffectFailed(ctx, c.log, "job_counter", err,
			slog.String("job_id", jobID.String()),
			slog.String("counter", domain.JobCounterApplicants.String()))
	}
	if err := c.users.IncrementApplications(ctx, userID, 1); err != nil {
		sideEffectFailed(ctx, c.log, "user_counter", err,
			slog.String("user_id", userID.String()))
	}
}

// Decided bumps the accepted or rejected counter of the job. Other
// statuses leave the counters untouched.
func (c *CounterUpdater) Decided(ctx context.Context, jobID uuid.UUID, status domain.ApplicationStatus) {
	counter, ok := status.JobCounter()
	if !ok {
		return
	}
	if err := c.jobs.IncrementCounter(ctx, jobID, counter, 1); err != nil {
		sideEffectFailed(ctx, c.log, "job_counter", err,
			slog.String("job_id", jobID.String()),
			slog.String("counter", counter.String()))
	}
}

// Withdrawn lowers the user's application count.
func (c *CounterUpdater) Withdrawn(ctx context.Context, userID uuid.UUID) {
	if err := c.users.IncrementApplications(ctx, userID, -1); err != nil {
		sideEffectFailed(ctx, c.log, "user_counter", err,
			slog.String("user_id", userID.String()))
	}
}
