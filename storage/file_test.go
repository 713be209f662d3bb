package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyCart, `[{"product_id":"1"}]`))

	got, err := store.Get(KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[{"product_id":"1"}]`, got)
}

func TestFileStore_GetMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("never-written")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_OverwriteReplacesValue(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyToken, "first"))
	require.NoError(t, store.Set(KeyToken, "second"))

	got, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyUser, `{"id":"u1"}`))
	require.NoError(t, store.Delete(KeyUser))
	require.NoError(t, store.Delete(KeyUser))

	_, err = store.Get(KeyUser)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")

	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStore_LeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyCart, "[]"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyCart+".json", entries[0].Name())
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(KeyCart, "[]"))
	got, err := store.Get(KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	require.NoError(t, store.Delete(KeyCart))
	_, err = store.Get(KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}
