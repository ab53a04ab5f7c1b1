package gallery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leca/ai-photobooth/internal/blobstore"
	"github.com/leca/ai-photobooth/internal/model"
)

func TestList_CategoriesAndExclusions(t *testing.T) {
	store := blobstore.NewMemory()
	now := time.Now().UTC()
	store.Seed("uploads/a.png", now)
	store.Seed("outputs/b.png", now)
	store.Seed("uploads/", now)   // folder placeholder
	store.Seed("misc/c.png", now) // unknown prefix

	ix := NewIndex(store)
	images, err := ix.List(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 2)

	assert.Equal(t, "uploads/a.png", images[0].Name)
	assert.Equal(t, model.CategoryOriginal, images[0].Type)
	assert.Equal(t, "outputs/b.png", images[1].Name)
	assert.Equal(t, model.CategoryTransformed, images[1].Type)
}

func TestList_NewestFirst(t *testing.T) {
	store := blobstore.NewMemory()
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)
	store.Seed("uploads/first.png", t1)
	store.Seed("outputs/second.png", t2)
	store.Seed("uploads/third.png", t3)

	ix := NewIndex(store)
	images, err := ix.List(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "uploads/third.png", images[0].Name)
	assert.Equal(t, "outputs/second.png", images[1].Name)
	assert.Equal(t, "uploads/first.png", images[2].Name)
}

func TestList_StableOnTies(t *testing.T) {
	store := blobstore.NewMemory()
	now := time.Now().UTC()
	store.Seed("uploads/x.png", now)
	store.Seed("uploads/y.png", now)
	store.Seed("uploads/z.png", now)

	ix := NewIndex(store)
	images, err := ix.List(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 3)
	// Equal timestamps keep store order.
	assert.Equal(t, "uploads/x.png", images[0].Name)
	assert.Equal(t, "uploads/y.png", images[1].Name)
	assert.Equal(t, "uploads/z.png", images[2].Name)
}

func TestList_StoreFailure(t *testing.T) {
	store := blobstore.NewMemory()
	store.ListErr = errors.New("bucket unavailable")

	ix := NewIndex(store)
	_, err := ix.List(context.Background())
	var ixErr *IndexError
	require.ErrorAs(t, err, &ixErr)
	assert.Contains(t, err.Error(), "bucket unavailable")
}
