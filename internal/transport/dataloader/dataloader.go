// Package dataloader provides per-request DataLoaders that batch the job and
// user lookups needed to enrich application listings into single SQL calls.
// DataLoaders call repositories directly, bypassing the service layer; the
// routes that use them are admin-only.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type jobRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Job, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Job  jobRepo
	User userRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders is created per-request via NewLoaders. A key with no row resolves
// to nil data and no error.
type Loaders struct {
	JobByID  *dataloader.Loader[uuid.UUID, *domain.Job]
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		JobByID:  newLoader(newJobBatchFn(repos.Job)),
		UserByID: newLoader(newUserBatchFn(repos.User)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
