package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/pkg/ctxutil"
)

// Get returns one application. Admin reads mark it as viewed; applicants
// may read only their own and never see internal notes.
func (s *Service) Get(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error) {
	app, err := s.visibleApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application.Get: %w", err)
	}

	if ctxutil.IsAdminCtx(ctx) && !app.ViewedByAdmin {
		if err := s.apps.MarkViewed(ctx, app.ID, s.now()); err != nil {
			sideEffectFailed(ctx, s.log, "mark_viewed", err,
				slog.String("application_id", app.ID.String()))
		} else {
			app.ViewedByAdmin = true
		}
	}

	return app, nil
}

// ListMine returns a page of the caller's applications, newest first.
func (s *Service) ListMine(ctx context.Context, input ListInput) ([]*domain.Application, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	limit, offset := s.pageBounds(input.Limit, input.Offset)
	apps, total, err := s.apps.List(ctx, domain.ApplicationFilter{
		UserID: &userID,
		Status: input.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("application.ListMine: %w", err)
	}

	for _, a := range apps {
		redactForApplicant(a)
	}
	return apps, total, nil
}

// ListAll returns a filtered page of all applications for admins.
func (s *Service) ListAll(ctx context.Context, input AdminListInput) ([]*domain.Application, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit, offset := s.pageBounds(input.Limit, input.Offset)
	apps, total, err := s.apps.List(ctx, domain.ApplicationFilter{
		UserID: input.UserID,
		JobID:  input.JobID,
		Status: input.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("application.ListAll: %w", err)
	}
	return apps, total, nil
}

// History returns the status trail of an application, newest first.
func (s *Service) History(ctx context.Context, applicationID uuid.UUID) ([]domain.HistoryEntry, error) {
	if _, err := s.visibleApplication(ctx, applicationID); err != nil {
		return nil, fmt.Errorf("application.History: %w", err)
	}

	entries, err := s.history.ListFor(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application.History: %w", err)
	}
	return entries, nil
}

// Delete removes an application together with its history.
func (s *Service) Delete(ctx context.Context, applicationID uuid.UUID) error {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.apps.Delete(ctx, applicationID); err != nil {
		return fmt.Errorf("application.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "application deleted",
		slog.String("application_id", applicationID.String()),
		slog.String("actor_id", actorID.String()))
	return nil
}

// visibleApplication loads an application the caller may read: admins see
// any application, applicants only their own with internal notes removed.
func (s *Service) visibleApplication(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if ctxutil.IsAdminCtx(ctx) {
		return app, nil
	}
	if !app.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	redactForApplicant(app)
	return app, nil
}
