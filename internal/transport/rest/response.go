package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// maxBodyBytes caps request bodies. Cover letters and notes are bounded by
// validation well below this.
const maxBodyBytes = 1 << 20

// Error kinds exposed to clients.
const (
	KindValidation      = "VALIDATION_ERROR"
	KindNotFound        = "NOT_FOUND"
	KindConflict        = "CONFLICT"
	KindForbidden       = "FORBIDDEN"
	KindUnauthenticated = "UNAUTHENTICATED"
	KindInternal        = "INTERNAL"
)

type errorBody struct {
	Kind    string          `json:"kind"`
	Message string          `json:"message"`
	Fields  []fieldErrorDTO `json:"fields,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Kind: kind, Message: message}})
}

// classify maps a service error to its HTTP status and client-facing body.
// Unknown errors become INTERNAL without leaking their text.
func classify(err error) (int, errorBody) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		fields := make([]fieldErrorDTO, len(ve.Errors))
		for i, fe := range ve.Errors {
			fields[i] = fieldErrorDTO{Field: fe.Field, Message: fe.Message}
		}
		return http.StatusBadRequest, errorBody{Kind: KindValidation, Message: "invalid input", Fields: fields}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorBody{Kind: KindValidation, Message: "invalid input"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorBody{Kind: KindNotFound, Message: "not found"}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorBody{Kind: KindConflict, Message: conflictReason(err)}
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, errorBody{Kind: KindConflict, Message: "already exists"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorBody{Kind: KindForbidden, Message: "forbidden"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorBody{Kind: KindUnauthenticated, Message: "authentication required"}
	default:
		return http.StatusInternalServerError, errorBody{Kind: KindInternal, Message: "internal server error"}
	}
}

// conflictReason extracts the text following "conflict: " so that the
// operation prefixes added while wrapping stay internal.
func conflictReason(err error) string {
	msg := err.Error()
	marker := domain.ErrConflict.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return domain.ErrConflict.Error()
}

// writeServiceError writes err as an error envelope, logging anything that
// maps to INTERNAL.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, body := classify(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	}
	writeJSON(w, status, errorResponse{Error: body})
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// pathUUID parses the {name} path wildcard as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// queryUUID parses an optional UUID query parameter.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a UUID")
	}
	return &id, nil
}

// queryStatus parses the optional status filter. Membership in the status
// set is checked by the service.
func queryStatus(r *http.Request) *domain.ApplicationStatus {
	v := r.URL.Query().Get("status")
	if v == "" {
		return nil
	}
	s := domain.ApplicationStatus(v)
	return &s
}

// queryPage parses limit and offset. Zero means "use the default".
func queryPage(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	var errs []domain.FieldError
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &limit}, {"offset", &offset}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be an integer"})
			continue
		}
		*p.dst = n
	}
	if len(errs) > 0 {
		return 0, 0, domain.NewValidationErrors(errs)
	}
	return limit, offset, nil
}

// pageResponse wraps a listing with the total count matching the filter.
type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newPage[T any](items []T, total int) pageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return pageResponse[T]{Items: items, Total: total}
}
