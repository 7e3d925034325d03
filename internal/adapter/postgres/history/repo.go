// Package history implements the application history repository using
// PostgreSQL. It provides append-only operations for status change records.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

const historyColumns = `id, application_id, previous_status, new_status, changed_by, changed_by_name, notes, interview_date, created_at`

const (
	insertSQL = `INSERT INTO application_history (` + historyColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + historyColumns

	listByApplicationSQL = `SELECT ` + historyColumns + `
FROM application_history
WHERE application_id = $1
ORDER BY created_at DESC, seq DESC`
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a history entry and returns the persisted record.
func (r *Repo) Create(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row historyRow
	err := pgxscan.Get(ctx, q, &row, insertSQL,
		entry.ID,
		entry.ApplicationID,
		string(entry.PreviousStatus),
		string(entry.NewStatus),
		entry.ChangedBy,
		entry.ChangedByName,
		entry.Notes,
		entry.InterviewDate,
		entry.CreatedAt,
	)
	if err != nil {
		return domain.HistoryEntry{}, postgres.MapError(err, "application_history", entry.ID)
	}

	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByApplication returns the history of an application, newest first.
// Entries sharing a timestamp are ordered by insertion, newest first.
func (r *Repo) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []historyRow
	if err := pgxscan.Select(ctx, q, &rows, listByApplicationSQL, applicationID); err != nil {
		return nil, fmt.Errorf("list history for application %s: %w", applicationID, err)
	}

	entries := make([]domain.HistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type historyRow struct {
	ID             uuid.UUID  `db:"id"`
	ApplicationID  uuid.UUID  `db:"application_id"`
	PreviousStatus string     `db:"previous_status"`
	NewStatus      string     `db:"new_status"`
	ChangedBy      uuid.UUID  `db:"changed_by"`
	ChangedByName  string     `db:"changed_by_name"`
	Notes          *string    `db:"notes"`
	InterviewDate  *time.Time `db:"interview_date"`
	CreatedAt      time.Time  `db:"created_at"`
}

func (r historyRow) toDomain() domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:             r.ID,
		ApplicationID:  r.ApplicationID,
		PreviousStatus: domain.ApplicationStatus(r.PreviousStatus),
		NewStatus:      domain.ApplicationStatus(r.NewStatus),
		ChangedBy:      r.ChangedBy,
		ChangedByName:  r.ChangedByName,
		Notes:          r.Notes,
		InterviewDate:  r.InterviewDate,
		CreatedAt:      r.CreatedAt,
	}
}
