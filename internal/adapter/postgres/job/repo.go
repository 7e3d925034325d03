// Package job implements read access and counter updates for job postings.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

const jobColumns = `id, title, company, status, application_deadline, applicants_count,
accepted_applicants, rejected_applicants, created_at, updated_at`

const getByIDSQL = `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

// Repo provides job persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new job repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a job by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row jobRow
	if err := pgxscan.Get(ctx, q, &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "job", id)
	}

	j := row.toDomain()
	return &j, nil
}

// GetByIDs returns the jobs with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Job, error) {
	if len(ids) == 0 {
		return []domain.Job{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(jobColumns).
		From("jobs").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build jobs by ids query: %w", err)
	}

	var rows []jobRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("get jobs by ids: %w", err)
	}

	jobs := make([]domain.Job, len(rows))
	for i, row := range rows {
		jobs[i] = row.toDomain()
	}
	return jobs, nil
}

// IncrementCounter adds delta to one of the job's counters in a single atomic
// statement. Only whitelisted counter columns are accepted.
func (r *Repo) IncrementCounter(ctx context.Context, jobID uuid.UUID, counter domain.JobCounter, delta int) error {
	if !counter.IsValid() {
		return domain.NewValidationError("counter", fmt.Sprintf("unknown job counter %q", counter))
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	col := counter.String()
	sql, args, err := postgres.Builder().
		Update("jobs").
		Set(col, squirrel.Expr(col+" + ?", delta)).
		Where("id = ?", jobID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "job", jobID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", jobID, domain.ErrNotFound)
	}
	return nil
}

type jobRow struct {
	ID                  uuid.UUID  `db:"id"`
	Title               string     `db:"title"`
	Company             string     `db:"company"`
	Status              string     `db:"status"`
	ApplicationDeadline *time.Time `db:"application_deadline"`
	ApplicantsCount     int        `db:"applicants_count"`
	AcceptedApplicants  int        `db:"accepted_applicants"`
	RejectedApplicants  int        `db:"rejected_applicants"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (r jobRow) toDomain() domain.Job {
	return domain.Job{
		ID:                  r.ID,
		Title:               r.Title,
		Company:             r.Company,
		Status:              domain.JobStatus(r.Status),
		ApplicationDeadline: r.ApplicationDeadline,
		ApplicantsCount:     r.ApplicantsCount,
		AcceptedApplicants:  r.AcceptedApplicants,
		RejectedApplicants:  r.RejectedApplicants,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}
