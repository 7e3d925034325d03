package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated portal user.
type User struct {
	ID                uuid.UUID
	Email             string
	Name              string
	Role              UserRole
	ResumeURL         *string
	ApplicationsCount int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DisplayName returns the name to show in audit records, falling back to
// the email when no name is set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// HasResume reports whether the user has a resume on file.
func (u *User) HasResume() bool {
	return u.ResumeURL != nil && *u.ResumeURL != ""
}
