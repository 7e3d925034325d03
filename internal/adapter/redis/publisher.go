package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// publishClient is the part of the Redis client the publisher needs.
type publishClient interface {
	Publish(ctx context.Context, channel string, message any) *goredis.IntCmd
}

// Publisher sends notifications to per-user channels named
// "<prefix>:<user id>".
type Publisher struct {
	client publishClient
	prefix string
}

// NewPublisher creates a Publisher on top of a Redis client.
func NewPublisher(client publishClient, prefix string) *Publisher {
	return &Publisher{client: client, prefix: prefix}
}

// Channel returns the channel a user's notifications are published to.
func (p *Publisher) Channel(userID uuid.UUID) string {
	return p.prefix + ":" + userID.String()
}

type notificationPayload struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Publish sends n to its recipient's channel as JSON.
func (p *Publisher) Publish(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(notificationPayload{
		ID:            n.ID,
		Title:         n.Title,
		Body:          n.Body,
		ApplicationID: n.ApplicationID,
		CreatedAt:     n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", n.ID, err)
	}

	if err := p.client.Publish(ctx, p.Channel(n.UserID), payload).Err(); err != nil {
		return fmt.Errorf("publish notification %s: %w", n.ID, err)
	}
	return nil
}
