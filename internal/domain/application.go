package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Application is a user's application to a job posting.
type Application struct {
	ID             uuid.UUID
	JobID          uuid.UUID
	UserID         uuid.UUID
	Status         ApplicationStatus
	ResumeURL      string
	CoverLetter    string
	AdditionalInfo map[string]any
	Notes          ApplicationNotes
	InterviewDate  *time.Time
	NextStep       *string
	ViewedByAdmin  bool
	AppliedAt      time.Time
	LastUpdated    time.Time
}

// IsOwnedBy reports whether userID submitted the application.
func (a *Application) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}

// ApplicationNotes holds the applicant's free text and the admin annotations.
type ApplicationNotes struct {
	UserNotes   string
	AdminNotes  []Note
	LastUpdated *time.Time
}

// Note is an admin annotation embedded in an application. Notes are
// append-only and ordered by insertion.
type Note struct {
	Content     string
	AddedBy     uuid.UUID
	AddedByName string
	IsInternal  bool
	NotifyUser  bool
	CreatedAt   time.Time
}

// NotesSummary counts notes by visibility.
type NotesSummary struct {
	Total         int
	InternalCount int
	ExternalCount int
}

// SummarizeNotes computes a NotesSummary over notes.
func SummarizeNotes(notes []Note) NotesSummary {
	s := NotesSummary{Total: len(notes)}
	for _, n := range notes {
		if n.IsInternal {
			s.InternalCount++
		} else {
			s.ExternalCount++
		}
	}
	return s
}

// ExternalNotes returns only the notes the applicant is allowed to see.
func ExternalNotes(notes []Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if !n.IsInternal {
			out = append(out, n)
		}
	}
	return out
}

// StatusUpdate describes a status change applied to an application.
// InterviewDate and NextStep are left untouched when nil.
type StatusUpdate struct {
	Status        ApplicationStatus
	InterviewDate *time.Time
	NextStep      *string
	At            time.Time
}

// HistoryEntry is an immutable record of one status change.
type HistoryEntry struct {
	ID             uuid.UUID
	ApplicationID  uuid.UUID
	PreviousStatus ApplicationStatus
	NewStatus      ApplicationStatus
	ChangedBy      uuid.UUID
	ChangedByName  string
	Notes          *string
	InterviewDate  *time.Time
	CreatedAt      time.Time
}

// ApplicationFilter narrows application listings. Nil fields are ignored.
type ApplicationFilter struct {
	UserID *uuid.UUID
	JobID  *uuid.UUID
	Status *ApplicationStatus
	Limit  int
	Offset int
}

// NormalizeText trims surrounding whitespace.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}
