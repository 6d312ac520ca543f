package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	t.Run("bare path gains immediate txlock", func(t *testing.T) {
		require.Equal(t, ":memory:?_txlock=immediate", normalizeDSN(":memory:"))
	})

	t.Run("existing query string is extended", func(t *testing.T) {
		require.Equal(t,
			"file:planner.db?_journal_mode=WAL&_txlock=immediate",
			normalizeDSN("file:planner.db?_journal_mode=WAL"))
	})

	t.Run("explicit txlock is left alone", func(t *testing.T) {
		dsn := "file:planner.db?_txlock=deferred"
		require.Equal(t, dsn, normalizeDSN(dsn))
	})
}

func TestNewStoreOpensNormalizedDSN(t *testing.T) {
	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Ping(context.Background()))
	require.NoError(t, st.ApplyMigrations())
}
