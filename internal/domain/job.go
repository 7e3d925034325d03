package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting users apply to. This service only mutates its counters.
type Job struct {
	ID                  uuid.UUID
	Title               string
	Company             string
	Status              JobStatus
	ApplicationDeadline *time.Time
	ApplicantsCount     int
	AcceptedApplicants  int
	RejectedApplicants  int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DeadlinePassed reports whether the application deadline is before now.
// A job without a deadline never expires.
func (j *Job) DeadlinePassed(now time.Time) bool {
	return j.ApplicationDeadline != nil && j.ApplicationDeadline.Before(now)
}
