package blobstore

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PutListRoundTrip(t *testing.T) {
	store := NewMemory()
	content := []byte("png bytes")

	url, err := store.Put(context.Background(), "uploads/a.png", bytes.NewReader(content), int64(len(content)), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.test/uploads/a.png", url)

	objects, err := store.List(context.Background(), "uploads/")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "uploads/a.png", objects[0].Key)
	assert.Equal(t, url, objects[0].URL)
	assert.False(t, objects[0].CreatedAt.IsZero())

	// Identity: what was uploaded is what is stored.
	got, ok := store.Get("uploads/a.png")
	require.True(t, ok)
	assert.Equal(t, content, got)
}

func TestMemory_ListFiltersByPrefix(t *testing.T) {
	store := NewMemory()
	_, err := store.Put(context.Background(), "uploads/a.png", bytes.NewReader([]byte("a")), 1, "image/png")
	require.NoError(t, err)
	_, err = store.Put(context.Background(), "outputs/b.png", bytes.NewReader([]byte("b")), 1, "image/png")
	require.NoError(t, err)

	objects, err := store.List(context.Background(), "outputs/")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "outputs/b.png", objects[0].Key)

	all, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
