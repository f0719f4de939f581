package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
)

// KVStore is a byte store addressed by string keys.
type KVStore interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists stored keys starting with prefix, in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// DayStateRepo persists one DayState per calendar day.
type DayStateRepo interface {
	Load(ctx context.Context, day time.Time) (*domain.DayState, error)
	Save(ctx context.Context, day time.Time, s domain.DayState) error
	// Purge removes the entries of every day other than keep and
	// reports how many were removed.
	Purge(ctx context.Context, keep time.Time) (int, error)
}
