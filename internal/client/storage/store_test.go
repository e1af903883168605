// internal/client/storage/store_test.go
package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestReadJSONMissingKeyReturnsFalse(t *testing.T) {
	store := openTestStore(t)

	value := "untouched"
	ok := store.ReadJSON("nope", &value)
	assert.False(t, ok)
	assert.Equal(t, "untouched", value)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	type payload struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}

	require.NoError(t, store.WriteJSON("key", payload{Name: "x", Items: []string{"a", "b"}}))

	var got payload
	require.True(t, store.ReadJSON("key", &got))
	assert.Equal(t, "x", got.Name)
	assert.Equal(t, []string{"a", "b"}, got.Items)
}

func TestWriteReplacesWholeValue(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.WriteJSON("key", map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, store.WriteJSON("key", map[string]string{"c": "3"}))

	var got map[string]string
	require.True(t, store.ReadJSON("key", &got))
	assert.Equal(t, map[string]string{"c": "3"}, got)
}

func TestReadJSONCorruptValueReturnsFalse(t *testing.T) {
	store := openTestStore(t)

	// A string is valid JSON but not an object; decoding into a struct
	// must fail gracefully.
	require.NoError(t, store.WriteJSON("key", "not an object"))

	var got struct{ Name string }
	assert.False(t, store.ReadJSON("key", &got))
	assert.Empty(t, got.Name)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.WriteJSON("key", 1))
	require.NoError(t, store.Delete("key"))
	require.NoError(t, store.Delete("key"))

	var got int
	assert.False(t, store.ReadJSON("key", &got))
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.WriteJSON("key", 42))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	var got int
	require.True(t, store.ReadJSON("key", &got))
	assert.Equal(t, 42, got)
}
