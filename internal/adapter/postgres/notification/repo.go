// Package notification implements the in-app notification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

const notificationColumns = `id, user_id, title, body, application_id, read_at, created_at`

const markReadSQL = `UPDATE notifications SET read_at = COALESCE(read_at, $3) WHERE id = $1 AND user_id = $2`

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateBatch inserts all notifications with a single multi-row statement.
func (r *Repo) CreateBatch(ctx context.Context, items []domain.Notification) error {
	if len(items) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Insert("notifications").
		Columns("id", "user_id", "title", "body", "application_id", "created_at")
	for _, n := range items {
		b = b.Values(n.ID, n.UserID, n.Title, n.Body, n.ApplicationID, n.CreatedAt)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build insert notifications query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "notification", items[0].ID)
	}
	return nil
}

// ListByUser returns a page of the user's notifications, newest first, and
// the total count matching the filter.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	countQ := postgres.Builder().Select("count(*)").From("notifications").Where("user_id = ?", userID)
	listQ := postgres.Builder().Select(notificationColumns).From("notifications").Where("user_id = ?", userID)
	if unreadOnly {
		countQ = countQ.Where("read_at IS NULL")
		listQ = listQ.Where("read_at IS NULL")
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count notifications query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}
	if total == 0 {
		return []domain.Notification{}, 0, nil
	}

	listSQL, listArgs, err := listQ.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list notifications query: %w", err)
	}

	var rows []notificationRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	items := make([]domain.Notification, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, total, nil
}

// MarkRead sets read_at on the user's notification. Marking an already read
// notification keeps its original read time.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, markReadSQL, id, userID, at)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type notificationRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	Title         string     `db:"title"`
	Body          string     `db:"body"`
	ApplicationID *uuid.UUID `db:"application_id"`
	ReadAt        *time.Time `db:"read_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r notificationRow) toDomain() domain.Notification {
	return domain.Notification{
		ID:            r.ID,
		UserID:        r.UserID,
		Title:         r.Title,
		Body:          r.Body,
		ApplicationID: r.ApplicationID,
		ReadAt:        r.ReadAt,
		CreatedAt:     r.CreatedAt,
	}
}
