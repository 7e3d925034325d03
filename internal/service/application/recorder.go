package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/metrics"
)

// Recorder appends and reads the status change trail of applications.
type Recorder struct {
	log     *slog.Logger
	history historyRepo
}

// NewRecorder creates a Recorder on top of a history repository.
func NewRecorder(logger *slog.Logger, history historyRepo) *Recorder {
	return &Recorder{log: logger, history: history}
}

// Record appends one history entry and returns its id. The entry id and
// timestamp are assigned when missing.
func (r *Recorder) Record(ctx context.Context, entry domain.HistoryEntry) (uuid.UUID, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	saved, err := r.history.Create(ctx, entry)
	if err != nil {
		return uuid.Nil, fmt.Errorf("history.Record: %w", err)
	}
	return saved.ID, nil
}

// RecordBestEffort appends an entry after the primary write has already
// succeeded. Failures are logged and counted, never returned.
func (r *Recorder) RecordBestEffort(ctx context.Context, entry domain.HistoryEntry) {
	if _, err := r.Record(ctx, entry); err != nil {
		sideEffectFailed(ctx, r.log, "history", err,
			slog.String("application_id", entry.ApplicationID.String()))
	}
}

// ListFor returns the trail of one application, newest first.
func (r *Recorder) ListFor(ctx context.Context, applicationID uuid.UUID) ([]domain.HistoryEntry, error) {
	entries, err := r.history.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("history.ListFor: %w", err)
	}
	return entries, nil
}

// sideEffectFailed logs and counts a failed follow-up write.
func sideEffectFailed(ctx context.Context, log *slog.Logger, step string, err error, attrs ...any) {
	metrics.SideEffectFailed(step)
	args := append([]any{slog.String("step", step), slog.String("error", err.Error())}, attrs...)
	log.WarnContext(ctx, "side effect failed", args...)
}
