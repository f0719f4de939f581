package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/timecard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kvStores runs the same contract against every KVStore implementation.
func kvStores(t *testing.T) map[string]KVStore {
	return map[string]KVStore{
		"sqlite": NewSQLiteKVStore(testutil.NewTestDB(t)),
		"memory": NewMemoryKVStore(),
	}
}

func TestKVStore_GetMissing(t *testing.T) {
	for name, kv := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(context.Background(), "timecard_2025-06-15")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestKVStore_SetOverwrites(t *testing.T) {
	for name, kv := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, kv.Set(ctx, "k", []byte("first")))
			require.NoError(t, kv.Set(ctx, "k", []byte("second")))

			got, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("second"), got)
		})
	}
}

func TestKVStore_DeleteAndKeys(t *testing.T) {
	for name, kv := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, k := range []string{"timecard_2025-06-15", "timecard_2025-06-14", "timecardX2025", "other"} {
				require.NoError(t, kv.Set(ctx, k, []byte("{}")))
			}

			keys, err := kv.Keys(ctx, "timecard_")
			require.NoError(t, err)
			assert.Equal(t, []string{"timecard_2025-06-14", "timecard_2025-06-15"}, keys,
				"underscore in the prefix must match literally")

			require.NoError(t, kv.Delete(ctx, "timecard_2025-06-14"))
			require.NoError(t, kv.Delete(ctx, "never-stored"))

			keys, err = kv.Keys(ctx, "timecard_")
			require.NoError(t, err)
			assert.Equal(t, []string{"timecard_2025-06-15"}, keys)
		})
	}
}

func TestMemoryKVStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVStore()
	buf := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", buf))
	buf[0] = 'z'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
