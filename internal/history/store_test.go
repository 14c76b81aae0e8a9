package history

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAssignsIDAndTime(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := &Entry{Source: "fortunes", Text: "Neckties strangle clear thinking."}
	require.NoError(t, store.Record(ctx, entry))

	_, err := uuid.Parse(entry.ID)
	assert.NoError(t, err, "ID should be a uuid")
	assert.False(t, entry.ServedAt.IsZero())

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecentOrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	seed := uint64(1)
	require.NoError(t, store.Record(ctx, &Entry{Source: "a", Text: "first", ServedAt: base}))
	require.NoError(t, store.Record(ctx, &Entry{Source: "b", Text: "second", Seed: &seed, ServedAt: base.Add(time.Minute)}))
	require.NoError(t, store.Record(ctx, &Entry{Source: "c", Text: "third", ServedAt: base.Add(2 * time.Minute)}))

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].Text)
	assert.Nil(t, entries[0].Seed)
	assert.Equal(t, "second", entries[1].Text)
	require.NotNil(t, entries[1].Seed)
	assert.Equal(t, uint64(1), *entries[1].Seed)
	assert.True(t, base.Add(time.Minute).Equal(entries[1].ServedAt))

	all, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSeedRoundTripsFullRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seed := uint64(math.MaxUint64)
	require.NoError(t, store.Record(ctx, &Entry{Source: "a", Text: "x", Seed: &seed}))

	entries, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Seed)
	assert.Equal(t, seed, *entries[0].Seed)
}

func TestDuplicateIDRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, &Entry{ID: "fixed", Source: "a", Text: "x"}))
	err := store.Record(ctx, &Entry{ID: "fixed", Source: "a", Text: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record served fortune")
}

func TestFileStorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "history.db")
	ctx := context.Background()

	store, err := NewStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, &Entry{Source: "a", Text: "kept"}))
	require.NoError(t, store.Close())

	store, err = NewStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Text)
}
