package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/timecard/internal/db"
	"github.com/alexanderramin/timecard/internal/domain"
)

// KVDayStateRepo stores each day under domain.DayKey in a KVStore.
type KVDayStateRepo struct {
	kv  KVStore
	uow db.UnitOfWork
}

// NewKVDayStateRepo builds a repo over any KVStore. Purge runs without a
// transaction.
func NewKVDayStateRepo(kv KVStore) *KVDayStateRepo {
	return &KVDayStateRepo{kv: kv}
}

// NewSQLiteDayStateRepo builds a repo over the kv_store table. Purge
// deletes all stale days in one transaction.
func NewSQLiteDayStateRepo(database *sql.DB, uow db.UnitOfWork) *KVDayStateRepo {
	return &KVDayStateRepo{kv: NewSQLiteKVStore(database), uow: uow}
}

// Load returns the stored state for day's calendar date. A missing entry
// yields an error wrapping ErrNotFound; an undecodable one wraps ErrCorrupt.
func (r *KVDayStateRepo) Load(ctx context.Context, day time.Time) (*domain.DayState, error) {
	data, err := r.kv.Get(ctx, domain.DayKey(day))
	if err != nil {
		return nil, err
	}
	s, err := DecodeDayState(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", domain.DayKey(day), err)
	}
	return s, nil
}

func (r *KVDayStateRepo) Save(ctx context.Context, day time.Time, s domain.DayState) error {
	data, err := EncodeDayState(s)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, domain.DayKey(day), data)
}

func (r *KVDayStateRepo) Purge(ctx context.Context, keep time.Time) (int, error) {
	if r.uow == nil {
		return purgeDays(ctx, r.kv, keep)
	}
	var removed int
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := purgeDays(ctx, NewSQLiteKVStore(tx), keep)
		removed = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func purgeDays(ctx context.Context, kv KVStore, keep time.Time) (int, error) {
	keys, err := kv.Keys(ctx, domain.DayKeyPrefix)
	if err != nil {
		return 0, err
	}
	keepKey := domain.DayKey(keep)
	removed := 0
	for _, k := range keys {
		if k == keepKey {
			continue
		}
		if err := kv.Delete(ctx, k); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
