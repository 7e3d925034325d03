package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/metrics"
	"github.com/Immonkei/Backend-Mobile-MAD/pkg/ctxutil"
)

// Submit creates a pending application of the caller for a job.
// All preconditions are checked before anything is written. Counter
// updates and admin notifications follow the insert and never fail it.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, fmt.Errorf("application.Submit: %w", err)
	}

	now := s.now()
	if !s.cfg.AcceptsApplications(job.Status) {
		return nil, domain.Conflictf("job is %s and not accepting applications", job.Status)
	}
	if job.DeadlinePassed(now) {
		return nil, domain.Conflictf("application deadline has passed")
	}

	exists, err := s.apps.ExistsForJobAndUser(ctx, job.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("application.Submit: %w", err)
	}
	if exists {
		return nil, domain.Conflictf("already applied to this job")
	}

	resumeURL, err := s.resolveResume(ctx, userID, input.ResumeURL)
	if err != nil {
		return nil, err
	}

	app := &domain.Application{
		ID:             uuid.New(),
		JobID:          job.ID,
		UserID:         userID,
		Status:         domain.ApplicationStatusPending,
		ResumeURL:      resumeURL,
		CoverLetter:    domain.NormalizeText(input.CoverLetter),
		AdditionalInfo: input.AdditionalInfo,
		AppliedAt:      now,
		LastUpdated:    now,
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		// A concurrent submit may win the unique (job, user) index.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.Conflictf("already applied to this job")
		}
		return nil, fmt.Errorf("application.Submit: %w", err)
	}

	metrics.ApplicationSubmitted()
	s.counters.Submitted(ctx, job.ID, userID)
	s.notifyAdmins(ctx, domain.Message{
		Title:         "New application received",
		Body:          fmt.Sprintf("A new application was submitted for %s at %s.", job.Title, job.Company),
		ApplicationID: &created.ID,
	})

	s.log.InfoContext(ctx, "application submitted",
		slog.String("application_id", created.ID.String()),
		slog.String("job_id", job.ID.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}

// resolveResume picks the supplied resume or falls back to the one on file.
func (s *Service) resolveResume(ctx context.Context, userID uuid.UUID, supplied string) (string, error) {
	if supplied != "" {
		return supplied, nil
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("application.Submit: %w", err)
	}
	if !u.HasResume() {
		return "", domain.NewValidationError("resume_url", "required: upload a resume or provide a link")
	}
	return *u.ResumeURL, nil
}
