package application

import (
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

const (
	maxResumeURLLength   = 2048
	maxCoverLetterLength = 5000
	maxNoteLength        = 5000
	maxUserNotesLength   = 5000
	maxNextStepLength    = 500
)

// SubmitInput holds parameters for submitting an application.
type SubmitInput struct {
	JobID          uuid.UUID
	ResumeURL      string
	CoverLetter    string
	AdditionalInfo map[string]any
}

// Validate validates the submit input. A missing resume is checked later
// against the resume on file.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.JobID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "job_id", Message: "required"})
	}

	if i.ResumeURL != "" {
		if len(i.ResumeURL) > maxResumeURLLength {
			errs = append(errs, domain.FieldError{Field: "resume_url", Message: "too long"})
		} else if !isHTTPURL(i.ResumeURL) {
			errs = append(errs, domain.FieldError{Field: "resume_url", Message: "must be an http(s) URL"})
		}
	}

	if utf8.RuneCountInString(i.CoverLetter) > maxCoverLetterLength {
		errs = append(errs, domain.FieldError{Field: "cover_letter", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransitionInput holds parameters for an admin status change.
type TransitionInput struct {
	ApplicationID uuid.UUID
	Status        domain.ApplicationStatus
	Notes         *string
	NextStep      *string
	InterviewDate *time.Time
	NotifyUser    bool
}

// Validate validates the transition input.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	errs = appendStatusErrors(errs, i.Status)
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}
	if i.NextStep != nil && utf8.RuneCountInString(*i.NextStep) > maxNextStepLength {
		errs = append(errs, domain.FieldError{Field: "next_step", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkTransitionInput holds parameters for a bulk status change. Ids beyond
// the configured limit are dropped without error.
type BulkTransitionInput struct {
	ApplicationIDs []uuid.UUID
	Status         domain.ApplicationStatus
	Notes          *string
	NotifyUser     bool
}

// Validate validates the bulk transition input.
func (i BulkTransitionInput) Validate() error {
	var errs []domain.FieldError

	if len(i.ApplicationIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "application_ids", Message: "required"})
	}
	errs = appendStatusErrors(errs, i.Status)
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddNoteInput holds parameters for adding an admin note.
type AddNoteInput struct {
	ApplicationID uuid.UUID
	Content       string
	IsInternal    bool
	NotifyUser    bool
}

// Validate validates the add note input.
func (i AddNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}

	content := domain.NormalizeText(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(content) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserNotesInput holds parameters for replacing the applicant's notes.
type UpdateUserNotesInput struct {
	ApplicationID uuid.UUID
	Notes         string
}

// Validate validates the update user notes input.
func (i UpdateUserNotesInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if utf8.RuneCountInString(i.Notes) > maxUserNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for listing the caller's applications.
type ListInput struct {
	Status *domain.ApplicationStatus
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	return validatePage(i.Status, i.Limit, i.Offset)
}

// AdminListInput holds parameters for the admin application listing.
type AdminListInput struct {
	Status *domain.ApplicationStatus
	JobID  *uuid.UUID
	UserID *uuid.UUID
	Limit  int
	Offset int
}

// Validate validates the admin list input.
func (i AdminListInput) Validate() error {
	return validatePage(i.Status, i.Limit, i.Offset)
}

func validatePage(status *domain.ApplicationStatus, limit, offset int) error {
	var errs []domain.FieldError

	if status != nil && !status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendStatusErrors(errs []domain.FieldError, status domain.ApplicationStatus) []domain.FieldError {
	if status == "" {
		return append(errs, domain.FieldError{Field: "status", Message: "required"})
	}
	if !status.IsValid() {
		return append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	return errs
}

func isHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
