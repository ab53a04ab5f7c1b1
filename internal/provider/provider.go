package provider

import (
	"context"
	"errors"
	"fmt"
)

// ImageEditor is the external image-to-image generation service. Edit
// submits source image bytes and a text prompt and returns the
// transformed image as base64-encoded PNG. Calls can take on the order of
// minutes and are attempted at most once per request.
type ImageEditor interface {
	Edit(ctx context.Context, image []byte, prompt, size string) (string, error)
}

// ErrTimeout reports that the provider exceeded its latency bound.
var ErrTimeout = errors.New("image edit request timed out")

// APIError is a non-success response from the provider, retaining the
// upstream status and body for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}
