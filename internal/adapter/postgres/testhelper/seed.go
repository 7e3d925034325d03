package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role and a resume on file.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	resume := "https://cdn.example.com/resumes/" + suffix + ".pdf"
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      role,
		ResumeURL: &resume,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, password_hash, resume_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Name, string(user.Role), "not-a-real-hash", resume, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedJob creates a job in the given status without a deadline.
func SeedJob(t *testing.T, pool *pgxpool.Pool, status domain.JobStatus) domain.Job {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	job := domain.Job{
		ID:        uuid.New(),
		Title:     "Engineer " + suffix,
		Company:   "Acme " + suffix,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO jobs (id, title, company, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		job.ID, job.Title, job.Company, string(job.Status), job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJob: %v", err)
	}

	return job
}

// SeedApplication creates an application for (jobID, userID) in the given status.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, jobID, userID uuid.UUID, status domain.ApplicationStatus) domain.Application {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	app := domain.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		UserID:      userID,
		Status:      status,
		ResumeURL:   "https://cdn.example.com/resumes/" + uniqueSuffix() + ".pdf",
		AppliedAt:   now,
		LastUpdated: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO applications (id, job_id, user_id, status, resume_url, applied_at, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.JobID, app.UserID, string(app.Status), app.ResumeURL, app.AppliedAt, app.LastUpdated,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}

	return app
}
