package domain

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// AllApplicationStatuses lists every status in lifecycle order.
func AllApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationStatusPending,
		ApplicationStatusReviewed,
		ApplicationStatusShortlisted,
		ApplicationStatusInterview,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
		ApplicationStatusWithdrawn,
	}
}

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusAccepted, ApplicationStatusRejected,
		ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// CanWithdraw reports whether the applicant may still withdraw from this status.
func (s ApplicationStatus) CanWithdraw() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted:
		return true
	}
	return false
}

// JobCounter returns the job counter that tracks applications decided with
// this status, if any.
func (s ApplicationStatus) JobCounter() (JobCounter, bool) {
	switch s {
	case ApplicationStatusAccepted:
		return JobCounterAccepted, true
	case ApplicationStatusRejected:
		return JobCounterRejected, true
	}
	return "", false
}

// JobStatus is the publication state of a job posting.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

func (s JobStatus) String() string { return string(s) }

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusActive, JobStatusPaused, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

// JobCounter names one of the denormalized counters stored on a job.
type JobCounter string

const (
	JobCounterApplicants JobCounter = "applicants_count"
	JobCounterAccepted   JobCounter = "accepted_applicants"
	JobCounterRejected   JobCounter = "rejected_applicants"
)

func (c JobCounter) String() string { return string(c) }

func (c JobCounter) IsValid() bool {
	switch c {
	case JobCounterApplicants, JobCounterAccepted, JobCounterRejected:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// Satisfies reports whether a holder of r may act where required is demanded.
// Admins satisfy every role; everyone else must match exactly.
func (r UserRole) Satisfies(required UserRole) bool {
	if r.IsAdmin() {
		return true
	}
	return r == required
}
