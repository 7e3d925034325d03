package notify

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/metrics"
)

// Notify delivers msg to every user in userIDs in the background. The
// delivery outlives the caller's request and is bounded by the configured
// dispatch timeout. Failures are logged and counted only.
func (s *Service) Notify(ctx context.Context, userIDs []uuid.UUID, msg domain.Message) {
	recipients := uniqueIDs(userIDs)
	if len(recipients) == 0 {
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.DispatchTimeout)
		defer cancel()

		s.deliver(dctx, recipients, msg)
	}()
}

// Wait blocks until every in-flight delivery has finished.
func (s *Service) Wait() {
	s.inflight.Wait()
}

func (s *Service) deliver(ctx context.Context, recipients []uuid.UUID, msg domain.Message) {
	now := s.now()
	items := make([]domain.Notification, len(recipients))
	for i, userID := range recipients {
		items[i] = domain.Notification{
			ID:            uuid.New(),
			UserID:        userID,
			Title:         msg.Title,
			Body:          msg.Body,
			ApplicationID: msg.ApplicationID,
			CreatedAt:     now,
		}
	}

	if err := s.repo.CreateBatch(ctx, items); err != nil {
		metrics.NotificationsDispatched("store_failed", len(items))
		s.log.ErrorContext(ctx, "store notifications",
			slog.Int("recipients", len(items)),
			slog.String("error", err.Error()))
		return
	}
	metrics.NotificationsDispatched("stored", len(items))

	if s.pub == nil {
		return
	}

	var failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.cfg.PublishConcurrency)

	for _, n := range items {
		g.Go(func() error {
			if err := s.pub.Publish(ctx, n); err != nil {
				failed.Add(1)
				s.log.WarnContext(ctx, "publish notification",
					slog.String("user_id", n.UserID.String()),
					slog.String("error", err.Error()))
			}
			return nil
		})
	}
	_ = g.Wait()

	nFailed := int(failed.Load())
	metrics.NotificationsDispatched("published", len(items)-nFailed)
	if nFailed > 0 {
		metrics.NotificationsDispatched("publish_failed", nFailed)
	}
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
