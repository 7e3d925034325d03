package app

import (
	"log/slog"
	"net/http"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/metrics"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/transport/dataloader"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/transport/middleware"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/transport/rest"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Health        *rest.HealthHandler
	Auth          *rest.AuthHandler
	Application   *rest.ApplicationHandler
	Admin         *rest.AdminHandler
	Notification  *rest.NotificationHandler
	TokenVerifier middleware.TokenValidator
	Loaders       *dataloader.Repos
}

// NewRouter builds the HTTP handler: global middleware around an
// instrumented ServeMux, with role checks applied per route.
func NewRouter(logger *slog.Logger, cfg config.Config, h Handlers, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	user := middleware.RequireRole(domain.UserRoleUser)
	admin := middleware.RequireRole(domain.UserRoleAdmin)
	withLoaders := dataloader.Middleware(h.Loaders)

	authLimit := func(next http.Handler) http.Handler { return next }
	if cfg.RateLimit.Enabled {
		authLimit = limiter.Limit(cfg.RateLimit.AuthPerMinute, 0)
	}

	// Public
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))

	// Applicant (admins pass role checks too; ownership is enforced by the service)
	mux.Handle("POST /applications", user(http.HandlerFunc(h.Application.Submit)))
	mux.Handle("GET /applications/mine", user(http.HandlerFunc(h.Application.ListMine)))
	mux.Handle("GET /applications/{id}", user(http.HandlerFunc(h.Application.Get)))
	mux.Handle("POST /applications/{id}/withdraw", user(http.HandlerFunc(h.Application.Withdraw)))
	mux.Handle("PUT /applications/{id}/user-notes", user(http.HandlerFunc(h.Application.UpdateUserNotes)))
	mux.Handle("GET /applications/{id}/history", user(http.HandlerFunc(h.Application.History)))
	mux.Handle("GET /applications/{id}/notes", user(http.HandlerFunc(h.Application.ListNotes)))

	// Admin
	mux.Handle("GET /admin/applications", admin(withLoaders(http.HandlerFunc(h.Admin.List))))
	mux.Handle("PUT /admin/applications/{id}/status", admin(http.HandlerFunc(h.Admin.Transition)))
	mux.Handle("POST /admin/applications/bulk-status", admin(http.HandlerFunc(h.Admin.BulkTransition)))
	mux.Handle("POST /admin/applications/{id}/notes", admin(http.HandlerFunc(h.Admin.AddNote)))
	mux.Handle("DELETE /admin/applications/{id}", admin(http.HandlerFunc(h.Admin.Delete)))
	mux.Handle("POST /admin/reconcile", admin(http.HandlerFunc(h.Admin.Reconcile)))

	// Notifications
	mux.Handle("GET /notifications", user(http.HandlerFunc(h.Notification.List)))
	mux.Handle("POST /notifications/{id}/read", user(http.HandlerFunc(h.Notification.MarkRead)))

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(h.TokenVerifier),
		middleware.Logger(logger),
	}
	if cfg.RateLimit.Enabled {
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))
	}

	return middleware.Chain(mws...)(metrics.InstrumentHandler(mux))
}
