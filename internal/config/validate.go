package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0) {
		return fmt.Errorf("rate_limit: limits must be > 0 when enabled")
	}

	if err := c.Applications.validate(); err != nil {
		return fmt.Errorf("applications: %w", err)
	}

	if c.Notify.DispatchTimeout <= 0 {
		return fmt.Errorf("notify.dispatch_timeout must be > 0 (got %v)", c.Notify.DispatchTimeout)
	}

	if c.Reconcile.Schedule != "" {
		if _, err := cron.ParseStandard(c.Reconcile.Schedule); err != nil {
			return fmt.Errorf("reconcile.schedule: %w", err)
		}
	}

	return nil
}

func (a *ApplicationsConfig) validate() error {
	if a.BulkLimit <= 0 {
		return fmt.Errorf("bulk_limit must be > 0 (got %d)", a.BulkLimit)
	}
	if a.DefaultPageSize <= 0 || a.MaxPageSize < a.DefaultPageSize {
		return fmt.Errorf("page sizes must satisfy 0 < default (%d) <= max (%d)", a.DefaultPageSize, a.MaxPageSize)
	}

	statuses, err := ParseJobStatuses(a.OpenJobStatusesRaw)
	if err != nil {
		return fmt.Errorf("open_job_statuses: %w", err)
	}
	if len(statuses) == 0 {
		return fmt.Errorf("open_job_statuses must name at least one status")
	}
	a.OpenJobStatuses = statuses

	return nil
}

// ParseJobStatuses parses a comma-separated list of job statuses
// (e.g. "active,paused"). An empty string returns a nil slice.
func ParseJobStatuses(raw string) ([]domain.JobStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	statuses := make([]domain.JobStatus, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		s := domain.JobStatus(strings.ToLower(p))
		if !s.IsValid() {
			return nil, fmt.Errorf("unknown job status %q", p)
		}
		statuses = append(statuses, s)
	}

	return statuses, nil
}
