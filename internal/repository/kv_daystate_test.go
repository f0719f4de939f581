package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStateRepo_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDayStateRepo(database, testutil.NewTestUoW(database))

	want := testutil.NewTestDayState(testutil.WithRecords(testutil.Open(testutil.At(9, 0))))
	require.NoError(t, repo.Save(ctx, testutil.At(9, 0), want))

	got, err := repo.Load(ctx, testutil.At(18, 0))
	require.NoError(t, err)
	assert.True(t, want.Equal(*got))

	_, err = repo.Load(ctx, testutil.At(9, 0).AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDayStateRepo_StoresUnderDayKey(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVStore()
	repo := NewKVDayStateRepo(kv)

	require.NoError(t, repo.Save(ctx, testutil.At(9, 0), testutil.NewTestDayState()))

	keys, err := kv.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"timecard_2025-06-15"}, keys)
}

func TestDayStateRepo_LoadCorrupt(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVStore()
	require.NoError(t, kv.Set(ctx, domain.DayKey(testutil.Day), []byte("garbage")))

	_, err := NewKVDayStateRepo(kv).Load(ctx, testutil.Day)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDayStateRepo_PurgeKeepsToday(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDayStateRepo(database, testutil.NewTestUoW(database))

	for _, offset := range []int{-3, -1, 0} {
		day := testutil.Day.AddDate(0, 0, offset)
		require.NoError(t, repo.Save(ctx, day, domain.NewDayState(day)))
	}

	removed, err := repo.Purge(ctx, testutil.Day)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	keys, err := NewSQLiteKVStore(database).Keys(ctx, domain.DayKeyPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.DayKey(testutil.Day)}, keys)
}

func TestDayStateRepo_PurgeRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	repo := NewSQLiteDayStateRepo(database, uow)

	for _, offset := range []int{-3, -2, -1} {
		day := testutil.Day.AddDate(0, 0, offset)
		require.NoError(t, repo.Save(ctx, day, domain.NewDayState(day)))
	}

	_, err := repo.Purge(ctx, testutil.Day)
	require.ErrorIs(t, err, boom)

	keys, err := NewSQLiteKVStore(database).Keys(ctx, domain.DayKeyPrefix)
	require.NoError(t, err)
	assert.Len(t, keys, 3, "first delete must be rolled back")
}

func TestDayStateRepo_PurgeWithoutTransaction(t *testing.T) {
	ctx := context.Background()
	repo := NewKVDayStateRepo(NewMemoryKVStore())
	require.NoError(t, repo.Save(ctx, testutil.Day.AddDate(0, 0, -1), testutil.NewTestDayState()))

	removed, err := repo.Purge(ctx, testutil.Day)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}
