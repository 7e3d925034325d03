// Package notify delivers in-app notifications: it stores one row per
// recipient and fans the rows out to an optional pub/sub publisher.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type notificationRepo interface {
	CreateBatch(ctx context.Context, items []domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) error
}

// publisher pushes a stored notification to live subscribers.
type publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Service stores and dispatches notifications.
type Service struct {
	log      *slog.Logger
	repo     notificationRepo
	pub      publisher
	cfg      config.NotifyConfig
	now      func() time.Time
	inflight sync.WaitGroup
}

// NewService creates a notification service. pub may be nil, in which case
// notifications are only stored.
func NewService(log *slog.Logger, repo notificationRepo, pub publisher, cfg config.NotifyConfig) *Service {
	if cfg.PublishConcurrency <= 0 {
		cfg.PublishConcurrency = 1
	}
	return &Service{
		log:  log.With("service", "notify"),
		repo: repo,
		pub:  pub,
		cfg:  cfg,
		now:  func() time.Time { return time.Now().UTC() },
	}
}
