package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	userRoleKey  ctxKey = "user_role"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUserRole stores the caller's role in the context.
func WithUserRole(ctx context.Context, role domain.UserRole) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

// UserRoleFromCtx extracts the caller's role. Returns an empty role if absent.
func UserRoleFromCtx(ctx context.Context) domain.UserRole {
	role, _ := ctx.Value(userRoleKey).(domain.UserRole)
	return role
}

// IsAdminCtx reports whether the caller holds the admin role.
func IsAdminCtx(ctx context.Context) bool {
	return UserRoleFromCtx(ctx).IsAdmin()
}

// Authorize is the single role policy: it returns domain.ErrUnauthorized when
// no caller is present and domain.ErrForbidden when the caller's role does not
// satisfy required.
func Authorize(ctx context.Context, required domain.UserRole) error {
	if _, ok := UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !UserRoleFromCtx(ctx).Satisfies(required) {
		return domain.ErrForbidden
	}
	return nil
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
