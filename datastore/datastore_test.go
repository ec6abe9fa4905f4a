package datastore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGetDelete(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	defer store.Close()

	store.Add("key", "value")

	got, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)

	store.Delete("key")
	_, ok = store.Get("key")
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	defer store.Close()

	store.Add("a", 1)
	store.Add("b", 2)

	assert.ElementsMatch(t, []string{"a", "b"}, store.Keys())
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := New(path)
	require.NoError(t, err)
	store.Add("guild1", map[string]any{"name": "Test Server"})
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.Get("guild1")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "Test Server"}, got)
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store.Add("key", "value")
	_, ok := store.Get("key")
	assert.False(t, ok)
	assert.Error(t, store.SaveToFile())

	// closing twice is a no-op
	assert.NoError(t, store.Close())
}

func TestEmptyPathRejected(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}
