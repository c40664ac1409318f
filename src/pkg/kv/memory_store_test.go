package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))

	val, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
	assert.Equal(t, 2, store.Len())

	// deleting several keys at once, missing ones included, is not an error
	require.NoError(t, store.Delete(ctx, "a", "b", "missing"))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "old"))
	require.NoError(t, store.Set(ctx, "k", "new"))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", val)
}
