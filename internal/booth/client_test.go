package booth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leca/ai-photobooth/internal/model"
)

func TestClient_Transform(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transform", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"image":"data:image/jpeg;base64,AAAA","prompt":"art"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true,"transformedImage":"data:image/png;base64,BBBB","firebaseOriginalUrl":"u","firebaseTransformedUrl":"o"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	result, err := c.Transform(context.Background(), "data:image/jpeg;base64,AAAA", "art")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "data:image/png;base64,BBBB", result.TransformedImage)
}

func TestClient_Transform_ErrorEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"Failed to transform image","details":"provider exploded"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, err := c.Transform(context.Background(), "data:image/jpeg;base64,AAAA", "")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, "provider exploded", reqErr.Details)
	assert.Contains(t, err.Error(), "provider exploded")
}

func TestClient_ListImages(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/images", r.URL.Path)
		io.WriteString(w, `{"images":[{"url":"https://blobs.test/outputs/b.png","type":"transformed","name":"outputs/b.png","timeCreated":"2025-06-01T12:00:00Z"}]}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	images, err := c.ListImages(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, model.CategoryTransformed, images[0].Type)
	assert.Equal(t, "outputs/b.png", images[0].Name)
}

func TestClient_ListImages_Error(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"Failed to list images","details":"listing broke"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, err := c.ListImages(context.Background())

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "Failed to list images", reqErr.Message)
}
