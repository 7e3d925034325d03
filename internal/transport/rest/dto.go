package rest

import (
	"time"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

type userResponse struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	ResumeURL         *string `json:"resumeUrl,omitempty"`
	ApplicationsCount int     `json:"applicationsCount"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                u.ID.String(),
		Email:             u.Email,
		Name:              u.Name,
		Role:              u.Role.String(),
		ResumeURL:         u.ResumeURL,
		ApplicationsCount: u.ApplicationsCount,
	}
}

type noteResponse struct {
	Content     string    `json:"content"`
	AddedBy     string    `json:"addedBy"`
	AddedByName string    `json:"addedByName"`
	IsInternal  bool      `json:"isInternal"`
	NotifyUser  bool      `json:"notifyUser"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toNoteResponse(n domain.Note) noteResponse {
	return noteResponse{
		Content:     n.Content,
		AddedBy:     n.AddedBy.String(),
		AddedByName: n.AddedByName,
		IsInternal:  n.IsInternal,
		NotifyUser:  n.NotifyUser,
		CreatedAt:   n.CreatedAt,
	}
}

func toNoteResponses(notes []domain.Note) []noteResponse {
	out := make([]noteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out
}

type notesResponse struct {
	UserNotes   string         `json:"userNotes"`
	AdminNotes  []noteResponse `json:"adminNotes"`
	LastUpdated *time.Time     `json:"lastUpdated,omitempty"`
}

type applicationResponse struct {
	ID             string         `json:"id"`
	JobID          string         `json:"jobId"`
	UserID         string         `json:"userId"`
	Status         string         `json:"status"`
	ResumeURL      string         `json:"resumeUrl"`
	CoverLetter    string         `json:"coverLetter,omitempty"`
	AdditionalInfo map[string]any `json:"additionalInfo,omitempty"`
	Notes          notesResponse  `json:"notes"`
	InterviewDate  *time.Time     `json:"interviewDate,omitempty"`
	NextStep       *string        `json:"nextStep,omitempty"`
	ViewedByAdmin  bool           `json:"viewedByAdmin"`
	AppliedAt      time.Time      `json:"appliedAt"`
	LastUpdated    time.Time      `json:"lastUpdated"`

	// Populated on admin listings only.
	Job       *jobSummary     `json:"job,omitempty"`
	Applicant *applicantBrief `json:"applicant,omitempty"`
}

type jobSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Status  string `json:"status"`
}

type applicantBrief struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:             a.ID.String(),
		JobID:          a.JobID.String(),
		UserID:         a.UserID.String(),
		Status:         a.Status.String(),
		ResumeURL:      a.ResumeURL,
		CoverLetter:    a.CoverLetter,
		AdditionalInfo: a.AdditionalInfo,
		Notes: notesResponse{
			UserNotes:   a.Notes.UserNotes,
			AdminNotes:  toNoteResponses(a.Notes.AdminNotes),
			LastUpdated: a.Notes.LastUpdated,
		},
		InterviewDate: a.InterviewDate,
		NextStep:      a.NextStep,
		ViewedByAdmin: a.ViewedByAdmin,
		AppliedAt:     a.AppliedAt,
		LastUpdated:   a.LastUpdated,
	}
}

func toApplicationResponses(apps []*domain.Application) []applicationResponse {
	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = toApplicationResponse(a)
	}
	return out
}

type historyResponse struct {
	ID             string     `json:"id"`
	ApplicationID  string     `json:"applicationId"`
	PreviousStatus string     `json:"previousStatus"`
	NewStatus      string     `json:"newStatus"`
	ChangedBy      string     `json:"changedBy"`
	ChangedByName  string     `json:"changedByName"`
	Notes          *string    `json:"notes,omitempty"`
	InterviewDate  *time.Time `json:"interviewDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func toHistoryResponses(entries []domain.HistoryEntry) []historyResponse {
	out := make([]historyResponse, len(entries))
	for i, e := range entries {
		out[i] = historyResponse{
			ID:             e.ID.String(),
			ApplicationID:  e.ApplicationID.String(),
			PreviousStatus: e.PreviousStatus.String(),
			NewStatus:      e.NewStatus.String(),
			ChangedBy:      e.ChangedBy.String(),
			ChangedByName:  e.ChangedByName,
			Notes:          e.Notes,
			InterviewDate:  e.InterviewDate,
			CreatedAt:      e.CreatedAt,
		}
	}
	return out
}

type notificationResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	ApplicationID *string    `json:"applicationId,omitempty"`
	Read          bool       `json:"read"`
	ReadAt        *time.Time `json:"readAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toNotificationResponses(items []domain.Notification) []notificationResponse {
	out := make([]notificationResponse, len(items))
	for i := range items {
		n := items[i]
		var appID *string
		if n.ApplicationID != nil {
			s := n.ApplicationID.String()
			appID = &s
		}
		out[i] = notificationResponse{
			ID:            n.ID.String(),
			Title:         n.Title,
			Body:          n.Body,
			ApplicationID: appID,
			Read:          n.IsRead(),
			ReadAt:        n.ReadAt,
			CreatedAt:     n.CreatedAt,
		}
	}
	return out
}
