package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/metrics"
	"github.com/Immonkei/Backend-Mobile-MAD/pkg/ctxutil"
)

// Withdraw lets the applicant pull an application that has not reached an
// interview or a decision. The job applicant count is left as is.
func (s *Service) Withdraw(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application.Withdraw: %w", err)
	}
	if !app.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	if !app.Status.CanWithdraw() {
		return nil, domain.Conflictf("cannot withdraw an application in status %s", app.Status)
	}

	now := s.now()
	updated, err := s.apps.UpdateStatus(ctx, app.ID, domain.StatusUpdate{
		Status: domain.ApplicationStatusWithdrawn,
		At:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("application.Withdraw: %w", err)
	}

	metrics.ApplicationTransitioned(domain.ApplicationStatusWithdrawn.String())

	s.history.RecordBestEffort(ctx, domain.HistoryEntry{
		ApplicationID:  app.ID,
		PreviousStatus: app.Status,
		NewStatus:      domain.ApplicationStatusWithdrawn,
		ChangedBy:      userID,
		ChangedByName:  s.actorName(ctx, userID),
		CreatedAt:      now,
	})
	s.counters.Withdrawn(ctx, userID)

	s.log.InfoContext(ctx, "application withdrawn",
		slog.String("application_id", app.ID.String()),
		slog.String("user_id", userID.String()))

	redactForApplicant(updated)
	return updated, nil
}
