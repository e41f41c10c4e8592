package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetMissingKey(t *testing.T) {
	store := NewMemoryStore()

	value, found, err := store.Get("comments_js-basics-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestMemoryStoreSetAndOverwrite(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("ratings_react-intro", `[{"rating":5}]`))
	require.NoError(t, store.Set("ratings_react-intro", `[{"rating":3}]`))

	value, found, err := store.Get("ratings_react-intro")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"rating":3}]`, value)
}

func TestMemoryStoreEntriesSortedByKey(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("ratings_b", "[]"))
	require.NoError(t, store.Set("comments_a", "[]"))
	require.NoError(t, store.Set("comments_z", "[]"))

	entries, err := store.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "comments_a", entries[0].Key)
	assert.Equal(t, "comments_z", entries[1].Key)
	assert.Equal(t, "ratings_b", entries[2].Key)
}
