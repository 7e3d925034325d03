package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/service/application"
)

// applicationService is the applicant-facing slice of application.Service.
type applicationService interface {
	Submit(ctx context.Context, input application.SubmitInput) (*domain.Application, error)
	Get(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error)
	ListMine(ctx context.Context, input application.ListInput) ([]*domain.Application, int, error)
	Withdraw(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error)
	UpdateUserNotes(ctx context.Context, input application.UpdateUserNotesInput) (*domain.Application, error)
	History(ctx context.Context, applicationID uuid.UUID) ([]domain.HistoryEntry, error)
	ListNotes(ctx context.Context, applicationID uuid.UUID) (*application.NotesView, error)
}

// ApplicationHandler serves applicant REST endpoints. Reads under
// /applications/{id} also serve admins; the service decides visibility.
type ApplicationHandler struct {
	svc applicationService
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: logger.With("handler", "application")}
}

type submitRequest struct {
	JobID          uuid.UUID      `json:"jobId"`
	ResumeURL      string         `json:"resumeUrl"`
	CoverLetter    string         `json:"coverLetter"`
	AdditionalInfo map[string]any `json:"additionalInfo"`
}

type userNotesRequest struct {
	Notes string `json:"notes"`
}

type notesViewResponse struct {
	Notes   []noteResponse `json:"notes"`
	Summary struct {
		Total         int `json:"total"`
		InternalCount int `json:"internalCount"`
		ExternalCount int `json:"externalCount"`
	} `json:"summary"`
}

// Submit handles POST /applications.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Submit(r.Context(), application.SubmitInput{
		JobID:          req.JobID,
		ResumeURL:      req.ResumeURL,
		CoverLetter:    req.CoverLetter,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// ListMine handles GET /applications/mine?status=&limit=&offset=.
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := queryPage(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	apps, total, err := h.svc.ListMine(r.Context(), application.ListInput{
		Status: queryStatus(r),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, newPage(toApplicationResponses(apps), total))
}

// Get handles GET /applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Withdraw handles POST /applications/{id}/withdraw.
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Withdraw(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// UpdateUserNotes handles PUT /applications/{id}/user-notes.
func (h *ApplicationHandler) UpdateUserNotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req userNotesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	app, err := h.svc.UpdateUserNotes(r.Context(), application.UpdateUserNotesInput{
		ApplicationID: id,
		Notes:         req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// History handles GET /applications/{id}/history. Newest entry first.
func (h *ApplicationHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.History(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toHistoryResponses(entries)})
}

// ListNotes handles GET /applications/{id}/notes.
func (h *ApplicationHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	view, err := h.svc.ListNotes(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var resp notesViewResponse
	resp.Notes = toNoteResponses(view.Notes)
	resp.Summary.Total = view.Summary.Total
	resp.Summary.InternalCount = view.Summary.InternalCount
	resp.Summary.ExternalCount = view.Summary.ExternalCount
	writeJSON(w, http.StatusOK, resp)
}
