// Package application implements the Application repository using PostgreSQL.
// Admin notes are stored as an append-only JSONB array on the application row.
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

const applicationColumns = `id, job_id, user_id, status, resume_url, cover_letter, additional_info,
user_notes, admin_notes, notes_updated_at, interview_date, next_step, viewed_by_admin,
applied_at, last_updated`

const (
	insertSQL = `INSERT INTO applications (id, job_id, user_id, status, resume_url, cover_letter,
additional_info, applied_at, last_updated)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + applicationColumns

	getByIDSQL = `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	existsForJobAndUserSQL = `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`

	appendNoteSQL = `UPDATE applications
SET admin_notes = admin_notes || jsonb_build_array($2::jsonb),
    notes_updated_at = $3,
    last_updated = $3
WHERE id = $1
RETURNING ` + applicationColumns

	updateUserNotesSQL = `UPDATE applications
SET user_notes = $2,
    notes_updated_at = $3,
    last_updated = $3
WHERE id = $1
RETURNING ` + applicationColumns

	markViewedSQL = `UPDATE applications SET viewed_by_admin = true, last_updated = $2 WHERE id = $1`

	deleteSQL = `DELETE FROM applications WHERE id = $1`
)

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new application repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new application. A second application for the same
// (job, user) pair fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	info, err := marshalInfo(app.AdditionalInfo)
	if err != nil {
		return nil, fmt.Errorf("application %s marshal additional_info: %w", app.ID, err)
	}

	var row applicationRow
	err = pgxscan.Get(ctx, q, &row, insertSQL,
		app.ID,
		app.JobID,
		app.UserID,
		string(app.Status),
		app.ResumeURL,
		app.CoverLetter,
		info,
		app.AppliedAt,
		app.LastUpdated,
	)
	if err != nil {
		return nil, postgres.MapError(err, "application", app.ID)
	}

	return row.toDomain()
}

// UpdateStatus sets the status and last_updated fields. Interview date and
// next step are written only when provided.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, upd domain.StatusUpdate) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update("applications").
		Set("status", string(upd.Status)).
		Set("last_updated", upd.At)
	if upd.InterviewDate != nil {
		b = b.Set("interview_date", *upd.InterviewDate)
	}
	if upd.NextStep != nil {
		b = b.Set("next_step", *upd.NextStep)
	}

	sql, args, err := b.
		Where("id = ?", id).
		Suffix("RETURNING " + applicationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update status query: %w", err)
	}

	var row applicationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	return row.toDomain()
}

// AppendNote appends note to the admin notes array in a single statement,
// so concurrent appends never overwrite each other.
func (r *Repo) AppendNote(ctx context.Context, id uuid.UUID, note domain.Note) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	payload, err := json.Marshal(fromDomainNote(note))
	if err != nil {
		return nil, fmt.Errorf("application %s marshal note: %w", id, err)
	}

	var row applicationRow
	if err := pgxscan.Get(ctx, q, &row, appendNoteSQL, id, payload, note.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	return row.toDomain()
}

// UpdateUserNotes replaces the applicant's own notes.
func (r *Repo) UpdateUserNotes(ctx context.Context, id uuid.UUID, notes string, at time.Time) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row applicationRow
	if err := pgxscan.Get(ctx, q, &row, updateUserNotesSQL, id, notes, at); err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	return row.toDomain()
}

// MarkViewed flags the application as seen by an admin.
func (r *Repo) MarkViewed(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, markViewedSQL, id, at)
	if err != nil {
		return postgres.MapError(err, "application", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an application. History rows are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "application", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an application by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row applicationRow
	if err := pgxscan.Get(ctx, q, &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	return row.toDomain()
}

// ExistsForJobAndUser reports whether userID already applied to jobID,
// regardless of the application's status.
func (r *Repo) ExistsForJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, existsForJobAndUserSQL, jobID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check application for job %s user %s: %w", jobID, userID, err)
	}
	return exists, nil
}

// List returns a page of applications matching filter, newest first, and the
// total number of matches.
func (r *Repo) List(ctx context.Context, filter domain.ApplicationFilter) ([]*domain.Application, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.And{}
	if filter.UserID != nil {
		where = append(where, squirrel.Expr("user_id = ?", *filter.UserID))
	}
	if filter.JobID != nil {
		where = append(where, squirrel.Expr("job_id = ?", *filter.JobID))
	}
	if filter.Status != nil {
		where = append(where, squirrel.Expr("status = ?", string(*filter.Status)))
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("applications").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}
	if total == 0 {
		return []*domain.Application{}, 0, nil
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(applicationColumns).
		From("applications").
		Where(where).
		OrderBy("applied_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	var rows []applicationRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}

	apps := make([]*domain.Application, 0, len(rows))
	for _, row := range rows {
		app, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}
	return apps, total, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type applicationRow struct {
	ID             uuid.UUID  `db:"id"`
	JobID          uuid.UUID  `db:"job_id"`
	UserID         uuid.UUID  `db:"user_id"`
	Status         string     `db:"status"`
	ResumeURL      string     `db:"resume_url"`
	CoverLetter    string     `db:"cover_letter"`
	AdditionalInfo []byte     `db:"additional_info"`
	UserNotes      string     `db:"user_notes"`
	AdminNotes     []byte     `db:"admin_notes"`
	NotesUpdatedAt *time.Time `db:"notes_updated_at"`
	InterviewDate  *time.Time `db:"interview_date"`
	NextStep       *string    `db:"next_step"`
	ViewedByAdmin  bool       `db:"viewed_by_admin"`
	AppliedAt      time.Time  `db:"applied_at"`
	LastUpdated    time.Time  `db:"last_updated"`
}

// noteJSON is the JSONB representation of a single admin note.
type noteJSON struct {
	Content     string    `json:"content"`
	AddedBy     uuid.UUID `json:"added_by"`
	AddedByName string    `json:"added_by_name"`
	IsInternal  bool      `json:"is_internal"`
	NotifyUser  bool      `json:"notify_user"`
	CreatedAt   time.Time `json:"created_at"`
}

func fromDomainNote(n domain.Note) noteJSON {
	return noteJSON{
		Content:     n.Content,
		AddedBy:     n.AddedBy,
		AddedByName: n.AddedByName,
		IsInternal:  n.IsInternal,
		NotifyUser:  n.NotifyUser,
		CreatedAt:   n.CreatedAt,
	}
}

func (r applicationRow) toDomain() (*domain.Application, error) {
	var notes []noteJSON
	if len(r.AdminNotes) > 0 {
		if err := json.Unmarshal(r.AdminNotes, &notes); err != nil {
			return nil, fmt.Errorf("application %s unmarshal admin_notes: %w", r.ID, err)
		}
	}

	var info map[string]any
	if len(r.AdditionalInfo) > 0 {
		if err := json.Unmarshal(r.AdditionalInfo, &info); err != nil {
			return nil, fmt.Errorf("application %s unmarshal additional_info: %w", r.ID, err)
		}
	}

	adminNotes := make([]domain.Note, len(notes))
	for i, n := range notes {
		adminNotes[i] = domain.Note{
			Content:     n.Content,
			AddedBy:     n.AddedBy,
			AddedByName: n.AddedByName,
			IsInternal:  n.IsInternal,
			NotifyUser:  n.NotifyUser,
			CreatedAt:   n.CreatedAt,
		}
	}

	return &domain.Application{
		ID:             r.ID,
		JobID:          r.JobID,
		UserID:         r.UserID,
		Status:         domain.ApplicationStatus(r.Status),
		ResumeURL:      r.ResumeURL,
		CoverLetter:    r.CoverLetter,
		AdditionalInfo: info,
		Notes: domain.ApplicationNotes{
			UserNotes:   r.UserNotes,
			AdminNotes:  adminNotes,
			LastUpdated: r.NotesUpdatedAt,
		},
		InterviewDate: r.InterviewDate,
		NextStep:      r.NextStep,
		ViewedByAdmin: r.ViewedByAdmin,
		AppliedAt:     r.AppliedAt,
		LastUpdated:   r.LastUpdated,
	}, nil
}

func marshalInfo(info map[string]any) ([]byte, error) {
	if len(info) == 0 {
		return nil, nil
	}
	return json.Marshal(info)
}
