package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// applicationRepo defines the application persistence needed by the service.
type applicationRepo interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ExistsForJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, upd domain.StatusUpdate) (*domain.Application, error)
	AppendNote(ctx context.Context, id uuid.UUID, note domain.Note) (*domain.Application, error)
	UpdateUserNotes(ctx context.Context, id uuid.UUID, notes string, at time.Time) (*domain.Application, error)
	MarkViewed(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.ApplicationFilter) ([]*domain.Application, int, error)
}

// historyRepo defines the status history persistence.
type historyRepo interface {
	Create(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.HistoryEntry, error)
}

// jobRepo defines the job lookups and counter updates needed by the service.
type jobRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	IncrementCounter(ctx context.Context, jobID uuid.UUID, counter domain.JobCounter, delta int) error
}

// userRepo defines the user lookups and counter updates needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementApplications(ctx context.Context, userID uuid.UUID, delta int) error
	ListIDsByRole(ctx context.Context, role domain.UserRole) ([]uuid.UUID, error)
}

// notifier delivers in-app notifications. Delivery is fire-and-forget:
// implementations must not block the caller on slow recipients.
type notifier interface {
	Notify(ctx context.Context, userIDs []uuid.UUID, msg domain.Message)
}

// Service implements the application lifecycle.
type Service struct {
	log      *slog.Logger
	apps     applicationRepo
	users    userRepo
	jobs     jobRepo
	history  *Recorder
	counters *CounterUpdater
	notifier notifier
	cfg      config.ApplicationsConfig
	now      func() time.Time
}

// NewService creates a new application service.
func NewService(
	logger *slog.Logger,
	apps applicationRepo,
	history historyRepo,
	jobs jobRepo,
	users userRepo,
	notifier notifier,
	cfg config.ApplicationsConfig,
) *Service {
	log := logger.With("service", "application")
	return &Service{
		log:      log,
		apps:     apps,
		users:    users,
		jobs:     jobs,
		history:  NewRecorder(log, history),
		counters: NewCounterUpdater(log, jobs, users),
		notifier: notifier,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// actorName resolves the display name recorded in history and notes.
// Lookup failures degrade to "unknown" rather than failing the operation.
func (s *Service) actorName(ctx context.Context, actorID uuid.UUID) string {
	u, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		s.log.WarnContext(ctx, "resolve actor name",
			slog.String("user_id", actorID.String()),
			slog.String("error", err.Error()))
		return "unknown"
	}
	return u.DisplayName()
}

// notifyAdmins fans a message out to every admin account.
func (s *Service) notifyAdmins(ctx context.Context, msg domain.Message) {
	ids, err := s.users.ListIDsByRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		sideEffectFailed(ctx, s.log, "notify_admins", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	s.notifier.Notify(ctx, ids, msg)
}

// pageBounds clamps a requested page to the configured limits.
func (s *Service) pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// redactForApplicant strips internal admin notes from applications shown
// to their owner.
func redactForApplicant(app *domain.Application) {
	app.Notes.AdminNotes = domain.ExternalNotes(app.Notes.AdminNotes)
}
