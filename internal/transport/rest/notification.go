package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/service/notify"
)

type notificationService interface {
	List(ctx context.Context, input notify.ListInput) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// NotificationHandler serves the caller's in-app notifications.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// List handles GET /notifications?unread=true&limit=&offset=.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := queryPage(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var unreadOnly bool
	if v := r.URL.Query().Get("unread"); v != "" {
		if unreadOnly, err = strconv.ParseBool(v); err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("unread", "must be a boolean"))
			return
		}
	}

	items, total, err := h.svc.List(r.Context(), notify.ListInput{
		UnreadOnly: unreadOnly,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, newPage(toNotificationResponses(items), total))
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.MarkRead(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
