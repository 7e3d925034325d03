package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/service/application"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/service/reconcile"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/transport/dataloader"
)

// adminApplicationService is the admin-facing slice of application.Service.
type adminApplicationService interface {
	ListAll(ctx context.Context, input application.AdminListInput) ([]*domain.Application, int, error)
	Transition(ctx context.Context, input application.TransitionInput) (*domain.Application, error)
	BulkTransition(ctx context.Context, input application.BulkTransitionInput) (*application.BulkResult, error)
	AddNote(ctx context.Context, input application.AddNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, applicationID uuid.UUID) error
}

type counterReconciler interface {
	RecomputeCounters(ctx context.Context) (reconcile.Result, error)
}

// AdminHandler serves admin REST endpoints. Role checks happen in the router.
type AdminHandler struct {
	apps      adminApplicationService
	reconcile counterReconciler
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(apps adminApplicationService, reconciler counterReconciler, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		apps:      apps,
		reconcile: reconciler,
		log:       logger.With("handler", "admin"),
	}
}

type transitionRequest struct {
	Status        domain.ApplicationStatus `json:"status"`
	Notes         *string                  `json:"notes"`
	NextStep      *string                  `json:"nextStep"`
	InterviewDate *time.Time               `json:"interviewDate"`
	NotifyUser    bool                     `json:"notifyUser"`
}

type bulkTransitionRequest struct {
	ApplicationIDs []string                 `json:"applicationIds"`
	Status         domain.ApplicationStatus `json:"status"`
	Notes          *string                  `json:"notes"`
	NotifyUser     bool                     `json:"notifyUser"`
}

type addNoteRequest struct {
	Content    string `json:"content"`
	IsInternal bool   `json:"isInternal"`
	NotifyUser bool   `json:"notifyUser"`
}

type bulkItemResponse struct {
	ApplicationID string               `json:"applicationId"`
	OK            bool                 `json:"ok"`
	Application   *applicationResponse `json:"application,omitempty"`
	Error         *errorBody           `json:"error,omitempty"`
}

type bulkResponse struct {
	Requested int                `json:"requested"`
	Processed int                `json:"processed"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Results   []bulkItemResponse `json:"results"`
}

type reconcileResponse struct {
	JobsCorrected  int64 `json:"jobsCorrected"`
	UsersCorrected int64 `json:"usersCorrected"`
}

// List handles GET /admin/applications?status=&jobId=&userId=&limit=&offset=.
// Each row carries a job summary and applicant brief resolved in batches.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := queryPage(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	jobID, err := queryUUID(r, "jobId")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	userID, err := queryUUID(r, "userId")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	apps, total, err := h.apps.ListAll(r.Context(), application.AdminListInput{
		Status: queryStatus(r),
		JobID:  jobID,
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items := toApplicationResponses(apps)
	h.enrich(r.Context(), apps, items)

	writeJSON(w, http.StatusOK, newPage(items, total))
}

// enrich attaches job and applicant summaries. Lookup failures leave the
// summaries empty; the listing itself is still served.
func (h *AdminHandler) enrich(ctx context.Context, apps []*domain.Application, items []applicationResponse) {
	if len(apps) == 0 {
		return
	}
	loaders := dataloader.FromContext(ctx)

	jobIDs := make([]uuid.UUID, len(apps))
	userIDs := make([]uuid.UUID, len(apps))
	for i, a := range apps {
		jobIDs[i] = a.JobID
		userIDs[i] = a.UserID
	}
	jobThunk := loaders.JobByID.LoadMany(ctx, jobIDs)
	userThunk := loaders.UserByID.LoadMany(ctx, userIDs)

	jobs, jobErrs := jobThunk()
	users, userErrs := userThunk()

	for i := range items {
		if jobErrs == nil || jobErrs[i] == nil {
			if j := jobs[i]; j != nil {
				items[i].Job = &jobSummary{
					ID:      j.ID.String(),
					Title:   j.Title,
					Company: j.Company,
					Status:  j.Status.String(),
				}
			}
		}
		if userErrs == nil || userErrs[i] == nil {
			if u := users[i]; u != nil {
				items[i].Applicant = &applicantBrief{
					ID:    u.ID.String(),
					Name:  u.Name,
					Email: u.Email,
				}
			}
		}
	}

	if len(jobErrs) > 0 || len(userErrs) > 0 {
		h.log.WarnContext(ctx, "listing enrichment incomplete",
			slog.Int("job_errors", countErrs(jobErrs)),
			slog.Int("user_errors", countErrs(userErrs)))
	}
}

func countErrs(errs []error) int {
	n := 0
	for _, err := range errs {
		if err != nil {
			n++
		}
	}
	return n
}

// Transition handles PUT /admin/applications/{id}/status.
func (h *AdminHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req transitionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	app, err := h.apps.Transition(r.Context(), application.TransitionInput{
		ApplicationID: id,
		Status:        req.Status,
		Notes:         req.Notes,
		NextStep:      req.NextStep,
		InterviewDate: req.InterviewDate,
		NotifyUser:    req.NotifyUser,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// BulkTransition handles POST /admin/applications/bulk-status. Per-item
// failures are reported in the body; the response is 200 whenever the
// request itself was valid.
func (h *AdminHandler) BulkTransition(w http.ResponseWriter, r *http.Request) {
	var req bulkTransitionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	// Malformed ids become uuid.Nil so they fail on their own item and still
	// count toward requested and the batch limit.
	ids := make([]uuid.UUID, len(req.ApplicationIDs))
	for i, raw := range req.ApplicationIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids[i] = id
		}
	}

	result, err := h.apps.BulkTransition(r.Context(), application.BulkTransitionInput{
		ApplicationIDs: ids,
		Status:         req.Status,
		Notes:          req.Notes,
		NotifyUser:     req.NotifyUser,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := bulkResponse{
		Requested: result.Requested,
		Processed: len(result.Items),
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Results:   make([]bulkItemResponse, len(result.Items)),
	}
	for i, item := range result.Items {
		out := bulkItemResponse{ApplicationID: item.ApplicationID.String(), OK: item.OK()}
		if item.ApplicationID == uuid.Nil && i < len(req.ApplicationIDs) {
			out.ApplicationID = req.ApplicationIDs[i]
		}
		if item.OK() {
			app := toApplicationResponse(item.Application)
			out.Application = &app
		} else {
			_, body := classify(item.Err)
			out.Error = &body
		}
		resp.Results[i] = out
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddNote handles POST /admin/applications/{id}/notes.
func (h *AdminHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req addNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	note, err := h.apps.AddNote(r.Context(), application.AddNoteInput{
		ApplicationID: id,
		Content:       req.Content,
		IsInternal:    req.IsInternal,
		NotifyUser:    req.NotifyUser,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(*note))
}

// Delete handles DELETE /admin/applications/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.apps.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reconcile handles POST /admin/reconcile.
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	result, err := h.reconcile.RecomputeCounters(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, reconcileResponse{
		JobsCorrected:  result.JobsCorrected,
		UsersCorrected: result.UsersCorrected,
	})
}
