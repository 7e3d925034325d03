package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/metrics"
	"github.com/Immonkei/Backend-Mobile-MAD/pkg/ctxutil"
)

// Transition moves an application to a new status on behalf of an admin.
// Any status may follow any other. A history entry is written for every
// call, including ones that leave the status unchanged.
func (s *Service) Transition(ctx context.Context, input TransitionInput) (*domain.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	app, err := s.transition(ctx, actorID, s.actorName(ctx, actorID), input)
	if err != nil {
		return nil, fmt.Errorf("application.Transition: %w", err)
	}

	s.log.InfoContext(ctx, "application status changed",
		slog.String("application_id", app.ID.String()),
		slog.String("status", app.Status.String()),
		slog.String("actor_id", actorID.String()))

	return app, nil
}

// transition performs one status change with its follow-up writes. It is
// shared by Transition and BulkTransition.
func (s *Service) transition(ctx context.Context, actorID uuid.UUID, actorName string, input TransitionInput) (*domain.Application, error) {
	current, err := s.apps.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	upd := domain.StatusUpdate{
		Status:   input.Status,
		NextStep: input.NextStep,
		At:       now,
	}
	if input.Status == domain.ApplicationStatusInterview && input.InterviewDate != nil {
		upd.InterviewDate = input.InterviewDate
	}

	updated, err := s.apps.UpdateStatus(ctx, current.ID, upd)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationTransitioned(input.Status.String())

	notes := trimmedNotes(input.Notes)
	s.history.RecordBestEffort(ctx, domain.HistoryEntry{
		ApplicationID:  current.ID,
		PreviousStatus: current.Status,
		NewStatus:      input.Status,
		ChangedBy:      actorID,
		ChangedByName:  actorName,
		Notes:          notes,
		InterviewDate:  upd.InterviewDate,
		CreatedAt:      now,
	})

	if notes != nil && input.NotifyUser {
		withNote, err := s.apps.AppendNote(ctx, current.ID, domain.Note{
			Content:     *notes,
			AddedBy:     actorID,
			AddedByName: actorName,
			IsInternal:  false,
			NotifyUser:  true,
			CreatedAt:   now,
		})
		if err != nil {
			sideEffectFailed(ctx, s.log, "status_note", err,
				slog.String("application_id", current.ID.String()))
		} else {
			updated = withNote
		}
	}

	s.counters.Decided(ctx, current.JobID, input.Status)

	if input.NotifyUser {
		s.notifier.Notify(ctx, []uuid.UUID{current.UserID}, statusMessage(updated, notes))
	}

	return updated, nil
}

func statusMessage(app *domain.Application, notes *string) domain.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Your application status is now %s.", app.Status)
	if app.Status == domain.ApplicationStatusInterview && app.InterviewDate != nil {
		fmt.Fprintf(&b, " Interview scheduled for %s.", app.InterviewDate.UTC().Format("2006-01-02 15:04 MST"))
	}
	if app.NextStep != nil && *app.NextStep != "" {
		fmt.Fprintf(&b, " Next step: %s.", *app.NextStep)
	}
	if notes != nil {
		fmt.Fprintf(&b, " Note: %s", *notes)
	}

	id := app.ID
	return domain.Message{
		Title:         "Application status updated",
		Body:          b.String(),
		ApplicationID: &id,
	}
}

// trimmedNotes returns nil for absent or blank notes.
func trimmedNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	n := domain.NormalizeText(*notes)
	if n == "" {
		return nil
	}
	return &n
}
