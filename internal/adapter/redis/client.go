// Package redis publishes notifications to Redis pub/sub channels so that
// live clients can pick them up without polling.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
)

// NewClient creates a Redis client from the notify config and verifies the
// connection.
func NewClient(ctx context.Context, cfg config.NotifyConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}

// Ping checks that Redis answers.
func Ping(ctx context.Context, c goredis.UniversalClient) error {
	return c.Ping(ctx).Err()
}

// Pinger adapts a Redis client to the health checker's Ping(ctx) error shape.
type Pinger struct {
	client goredis.UniversalClient
}

// NewPinger wraps client.
func NewPinger(client goredis.UniversalClient) *Pinger {
	return &Pinger{client: client}
}

// Ping checks that Redis answers.
func (p *Pinger) Ping(ctx context.Context) error {
	return Ping(ctx, p.client)
}
