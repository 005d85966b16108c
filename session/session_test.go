package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "nested", "token")}

	// missing file means signed out, not an error
	token, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, store.Save("abc123"))
	token, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "abc123", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, token)

	// clearing twice is fine
	require.NoError(t, store.Clear())
}

func TestMemStore(t *testing.T) {
	store := &MemStore{}
	require.NoError(t, store.Save("tok"))
	token, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "tok", token)
	require.NoError(t, store.Clear())
	token, _ = store.Load()
	require.Empty(t, token)
}
