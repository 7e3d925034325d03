package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/pkg/ctxutil"
)

// BulkItemResult is the outcome of one id in a bulk transition.
type BulkItemResult struct {
	ApplicationID uuid.UUID
	Application   *domain.Application
	Err           error
}

// OK reports whether the item was transitioned.
func (r BulkItemResult) OK() bool { return r.Err == nil }

// BulkResult summarizes a bulk transition.
type BulkResult struct {
	Requested int
	Succeeded int
	Failed    int
	Items     []BulkItemResult
}

// BulkTransition applies one status change to many applications, one after
// another. Ids past the configured limit are dropped. Duplicate ids are
// processed each time they appear. A nil id is reported as a failed item
// without touching the store. A failing item does not stop the rest.
func (s *Service) BulkTransition(ctx context.Context, input BulkTransitionInput) (*BulkResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ids := input.ApplicationIDs
	if len(ids) > s.cfg.BulkLimit {
		ids = ids[:s.cfg.BulkLimit]
	}

	actorName := s.actorName(ctx, actorID)
	result := &BulkResult{
		Requested: len(input.ApplicationIDs),
		Items:     make([]BulkItemResult, 0, len(ids)),
	}

	for _, id := range ids {
		if id == uuid.Nil {
			result.Failed++
			result.Items = append(result.Items, BulkItemResult{
				ApplicationID: id,
				Err:           domain.NewValidationError("application_ids", "must be a valid UUID"),
			})
			continue
		}
		app, err := s.transition(ctx, actorID, actorName, TransitionInput{
			ApplicationID: id,
			Status:        input.Status,
			Notes:         input.Notes,
			NotifyUser:    input.NotifyUser,
		})
		if err != nil {
			result.Failed++
			result.Items = append(result.Items, BulkItemResult{ApplicationID: id, Err: err})
			s.log.WarnContext(ctx, "bulk transition item failed",
				slog.String("application_id", id.String()),
				slog.String("error", err.Error()))
			continue
		}
		result.Succeeded++
		result.Items = append(result.Items, BulkItemResult{ApplicationID: id, Application: app})
	}

	s.log.InfoContext(ctx, "bulk status change",
		slog.String("status", input.Status.String()),
		slog.Int("processed", len(ids)),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed))

	return result, nil
}
