package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/pkg/ctxutil"
)

// ListInput holds the parameters for listing the caller's notifications.
type ListInput struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns a page of the caller's notifications, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Notification, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	items, total, err := s.repo.ListByUser(ctx, userID, input.UnreadOnly, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("notify.List: %w", err)
	}
	return items, total, nil
}

// MarkRead marks one of the caller's notifications as read. Marking an
// already read notification keeps the original read time.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.repo.MarkRead(ctx, userID, id, s.now()); err != nil {
		return fmt.Errorf("notify.MarkRead: %w", err)
	}
	return nil
}
