package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/pkg/ctxutil"
)

// NotesView is the admin note list of an application with its summary.
type NotesView struct {
	Notes   []domain.Note
	Summary domain.NotesSummary
}

// AddNote appends an admin note to an application. External notes with
// NotifyUser set are pushed to the applicant.
func (s *Service) AddNote(ctx context.Context, input AddNoteInput) (*domain.Note, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	app, err := s.apps.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("application.AddNote: %w", err)
	}

	note := domain.Note{
		Content:     domain.NormalizeText(input.Content),
		AddedBy:     actorID,
		AddedByName: s.actorName(ctx, actorID),
		IsInternal:  input.IsInternal,
		NotifyUser:  input.NotifyUser,
		CreatedAt:   s.now(),
	}

	if _, err := s.apps.AppendNote(ctx, app.ID, note); err != nil {
		return nil, fmt.Errorf("application.AddNote: %w", err)
	}

	if note.NotifyUser && !note.IsInternal {
		id := app.ID
		s.notifier.Notify(ctx, []uuid.UUID{app.UserID}, domain.Message{
			Title:         "New note on your application",
			Body:          note.Content,
			ApplicationID: &id,
		})
	}

	s.log.InfoContext(ctx, "note added",
		slog.String("application_id", app.ID.String()),
		slog.Bool("internal", note.IsInternal))

	return &note, nil
}

// ListNotes returns the admin notes of an application. Applicants see only
// external notes and a summary computed over them.
func (s *Service) ListNotes(ctx context.Context, applicationID uuid.UUID) (*NotesView, error) {
	app, err := s.visibleApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application.ListNotes: %w", err)
	}

	notes := app.Notes.AdminNotes
	if notes == nil {
		notes = []domain.Note{}
	}
	return &NotesView{Notes: notes, Summary: domain.SummarizeNotes(notes)}, nil
}

// UpdateUserNotes replaces the applicant's own notes.
func (s *Service) UpdateUserNotes(ctx context.Context, input UpdateUserNotesInput) (*domain.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	app, err := s.apps.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("application.UpdateUserNotes: %w", err)
	}
	if !app.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.apps.UpdateUserNotes(ctx, app.ID, domain.NormalizeText(input.Notes), s.now())
	if err != nil {
		return nil, fmt.Errorf("application.UpdateUserNotes: %w", err)
	}

	redactForApplicant(updated)
	return updated, nil
}
