// Package user implements the User repository using PostgreSQL.
package user

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

const userColumns = `id, email, name, role, resume_url, applications_count, created_at, updated_at`

const (
	getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	getByEmailSQL = `SELECT ` + userColumns + `, password_hash FROM users WHERE lower(email) = lower($1)`

	insertSQL = `INSERT INTO users (id, email, name, role, password_hash, resume_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns

	listIDsByRoleSQL = `SELECT id FROM users WHERE role = $1 ORDER BY created_at`

	setRoleByEmailSQL = `UPDATE users SET role = $2, updated_at = $3
WHERE lower(email) = lower($1) AND role <> $2
RETURNING ` + userColumns
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// GetByIDs returns the users with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users by ids query: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// GetCredentialsByEmail returns the user with the given email (case-insensitive)
// together with the stored password hash.
func (r *Repo) GetCredentialsByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row credentialsRow
	if err := pgxscan.Get(ctx, q, &row, getByEmailSQL, email); err != nil {
		return nil, "", postgres.MapError(err, "user", uuid.Nil)
	}

	u := row.userRow.toDomain()
	return &u, row.PasswordHash, nil
}

// ListIDsByRole returns the ids of every user holding role.
func (r *Repo) ListIDsByRole(ctx context.Context, role domain.UserRole) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, q, &ids, listIDsByRoleSQL, string(role)); err != nil {
		return nil, fmt.Errorf("list users by role %s: %w", role, err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user with the given password hash.
func (r *Repo) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	err := pgxscan.Get(ctx, q, &row, insertSQL,
		u.ID,
		u.Email,
		u.Name,
		string(u.Role),
		passwordHash,
		u.ResumeURL,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// IncrementApplications adds delta to the user's applications_count in a
// single atomic statement.
func (r *Repo) IncrementApplications(ctx context.Context, userID uuid.UUID, delta int) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update("users").
		Set("applications_count", squirrel.Expr("applications_count + ?", delta)).
		Where("id = ?", userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// SetRoleByEmail changes the role of the user with the given email. A user
// that already holds role is reported as ErrNotFound, like a missing one.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole, at time.Time) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, setRoleByEmailSQL, email, string(role), at); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u := row.toDomain()
	return &u, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID                uuid.UUID `db:"id"`
	Email             string    `db:"email"`
	Name              string    `db:"name"`
	Role              string    `db:"role"`
	ResumeURL         *string   `db:"resume_url"`
	ApplicationsCount int       `db:"applications_count"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type credentialsRow struct {
	userRow
	PasswordHash string `db:"password_hash"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:                r.ID,
		Email:             r.Email,
		Name:              r.Name,
		Role:              domain.UserRole(r.Role),
		ResumeURL:         r.ResumeURL,
		ApplicationsCount: r.ApplicationsCount,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
