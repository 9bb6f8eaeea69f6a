package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/lingoflash/internal/storage"
)

// NewTestStore creates an in-memory SQLite store with migrations applied.
func NewTestStore(t *testing.T) *storage.SQLite {
	t.Helper()
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}
