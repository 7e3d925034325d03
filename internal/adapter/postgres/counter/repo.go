// Package counter recomputes denormalized job and user counters from the
// application rows and the status history they summarize.
package counter

import (
	"context"
	"fmt"

	postgres "github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres"
)

// Counters are event counts, the same definition the live updates use:
// applicants_count counts submissions, accepted/rejected count every entry
// into that status recorded in application_history, and applications_count
// counts submissions minus withdrawals made by the applicant.
const (
	recomputeJobCountersSQL = `UPDATE jobs j
SET applicants_count    = c.total,
    accepted_applicants = c.accepted,
    rejected_applicants = c.rejected,
    updated_at          = now()
FROM (
    SELECT jb.id,
           (SELECT count(*) FROM applications a WHERE a.job_id = jb.id) AS total,
           count(h.id) FILTER (WHERE h.new_status = 'accepted')        AS accepted,
           count(h.id) FILTER (WHERE h.new_status = 'rejected')        AS rejected
    FROM jobs jb
    LEFT JOIN applications a ON a.job_id = jb.id
    LEFT JOIN application_history h ON h.application_id = a.id
    GROUP BY jb.id
) c
WHERE j.id = c.id
  AND (j.applicants_count, j.accepted_applicants, j.rejected_applicants)
      IS DISTINCT FROM (c.total::int, c.accepted::int, c.rejected::int)`

	recomputeUserCountersSQL = `UPDATE users u
SET applications_count = c.total,
    updated_at         = now()
FROM (
    SELECT us.id,
           (SELECT count(*) FROM applications a WHERE a.user_id = us.id)
         - (SELECT count(*)
              FROM application_history h
              JOIN applications a ON a.id = h.application_id
             WHERE a.user_id = us.id
               AND h.changed_by = us.id
               AND h.new_status = 'withdrawn') AS total
    FROM users us
) c
WHERE u.id = c.id
  AND u.applications_count IS DISTINCT FROM c.total::int`
)

// Repo recomputes counters in PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new counter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// RecomputeJobCounters rewrites applicants_count, accepted_applicants and
// rejected_applicants for every job whose stored value drifted. A decision
// that is later changed still counts once per entry, so re-decided
// applications are not reported as drift. Returns the number of corrected
// jobs.
func (r *Repo) RecomputeJobCounters(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, recomputeJobCountersSQL)
	if err != nil {
		return 0, fmt.Errorf("recompute job counters: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RecomputeUserCounters rewrites applications_count for every user whose
// stored value drifted. Only withdrawals made by the applicant lower the
// count; an admin moving an application to withdrawn does not. Returns the
// number of corrected users.
func (r *Repo) RecomputeUserCounters(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, recomputeUserCountersSQL)
	if err != nil {
		return 0, fmt.Errorf("recompute user counters: %w", err)
	}
	return tag.RowsAffected(), nil
}
