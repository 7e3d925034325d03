package middleware

import (
	"errors"
	"net/http"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/pkg/ctxutil"
)

// RequireRole rejects requests whose caller does not satisfy required.
// Must run after Auth.
func RequireRole(required domain.UserRole) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := ctxutil.Authorize(r.Context(), required); err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
					return
				}
				writeError(w, http.StatusForbidden, "FORBIDDEN", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
