package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leca/ai-photobooth/internal/blobstore"
	"github.com/leca/ai-photobooth/internal/model"
)

func TestListImages(t *testing.T) {
	store := blobstore.NewMemory()
	t1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Seed("uploads/old.png", t1)
	store.Seed("outputs/new.png", t1.Add(time.Minute))
	store.Seed("uploads/", t1) // folder placeholder, excluded

	ts := testServer(t, store, &stubEditor{})

	resp, err := http.Get(ts.URL + "/api/images")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list model.ImageListResponse
	decodeBody(t, resp, &list)
	require.Len(t, list.Images, 2)
	assert.Equal(t, "outputs/new.png", list.Images[0].Name)
	assert.Equal(t, model.CategoryTransformed, list.Images[0].Type)
	assert.Equal(t, "uploads/old.png", list.Images[1].Name)
	assert.Equal(t, model.CategoryOriginal, list.Images[1].Type)
}

func TestListImages_Empty(t *testing.T) {
	ts := testServer(t, blobstore.NewMemory(), &stubEditor{})

	resp, err := http.Get(ts.URL + "/api/images")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list model.ImageListResponse
	decodeBody(t, resp, &list)
	assert.NotNil(t, list.Images)
	assert.Empty(t, list.Images)
}

func TestListImages_IndexFailure(t *testing.T) {
	store := blobstore.NewMemory()
	store.ListErr = errors.New("listing broke")
	ts := testServer(t, store, &stubEditor{})

	resp, err := http.Get(ts.URL + "/api/images")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var envelope map[string]string
	decodeBody(t, resp, &envelope)
	assert.Equal(t, "Failed to list images", envelope["error"])
	assert.Contains(t, envelope["details"], "listing broke")
}

func TestFavicon(t *testing.T) {
	ts := testServer(t, blobstore.NewMemory(), &stubEditor{})

	resp, err := http.Get(ts.URL + "/favicon.ico")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := testServer(t, blobstore.NewMemory(), &stubEditor{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}
