package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestStorage creates an in-memory database with migrations applied.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)

	require.NoError(t, store.Migrate(context.Background()))

	return store, func() {
		_ = store.Close()
	}
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("empty path rejected", func(t *testing.T) {
		_, err := NewSQLiteStorage("")
		require.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("in-memory database opens", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()
		require.NotNil(t, store)
	})
}

func TestMigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Re-running migrations must be a no-op.
	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.Migrate(context.Background()))
}
