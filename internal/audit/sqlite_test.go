package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestNewSQLiteStore(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		store, err := NewSQLiteStore(":memory:")
		require.NoError(t, err)
		require.NotNil(t, store)
		assert.NoError(t, store.Close())
	})

	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "audit.db")

		store, err := NewSQLiteStore(path)
		require.NoError(t, err)
		assert.NoError(t, store.Close())
	})

	t.Run("empty path rejected", func(t *testing.T) {
		store, err := NewSQLiteStore("")
		require.Error(t, err)
		assert.Nil(t, store)
	})
}

func TestSQLiteStore_AppendAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := NewEntry("1", "ops")
	second := NewEntry("3", "ops")
	third := NewEntry("1", "dispatcher") // repeat review of the same transaction

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))
	require.NoError(t, store.Append(ctx, third))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
	assert.Equal(t, third.ID, entries[2].ID)

	assert.Equal(t, "1", entries[0].TransactionID)
	assert.Equal(t, "dispatcher", entries[2].Actor)
	assert.True(t, first.Timestamp.Equal(entries[0].Timestamp))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSQLiteStore_AppendValidation(t *testing.T) {
	store := newTestStore(t)

	t.Run("missing transaction id", func(t *testing.T) {
		e := NewEntry("", "ops")
		err := store.Append(context.Background(), e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transaction id is required")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := store.Append(ctx, NewEntry("1", "ops"))
		assert.Error(t, err)
	})
}

func TestSQLiteStore_EmptyList(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	entry := NewEntry("1", "ops")
	require.NoError(t, store.Append(ctx, entry))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	entries, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, "1", entries[0].TransactionID)
}

func TestNewEntry(t *testing.T) {
	before := time.Now().UTC()
	e := NewEntry("1", "ops")
	after := time.Now().UTC()

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "1", e.TransactionID)
	assert.Equal(t, "ops", e.Actor)
	assert.False(t, e.Timestamp.Before(before))
	assert.False(t, e.Timestamp.After(after))

	// IDs must be unique per entry.
	assert.NotEqual(t, e.ID, NewEntry("1", "ops").ID)
}
