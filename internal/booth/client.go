package booth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/leca/ai-photobooth/internal/api"
	"github.com/leca/ai-photobooth/internal/model"
)

// RequestError is a non-success response from the booth API, carrying the
// server's error envelope.
type RequestError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *RequestError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("server error: %s", e.Details)
	}
	if e.Message != "" {
		return fmt.Sprintf("server error: %s", e.Message)
	}
	return fmt.Sprintf("server error: status %d", e.StatusCode)
}

// Client talks to the photobooth API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// Transform submits the current image and prompt and returns the
// transform result. The call blocks until the server settles; there is no
// way to cancel a submitted transform other than ctx.
func (c *Client) Transform(ctx context.Context, image, prompt string) (*model.TransformResponse, error) {
	body, err := json.Marshal(model.TransformRequest{Image: image, Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("encoding transform request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/transform", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating transform request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling /api/transform: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var result model.TransformResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding transform response: %w", err)
	}
	return &result, nil
}

// ListImages fetches the gallery listing, newest first.
func (c *Client) ListImages(ctx context.Context) ([]model.GalleryImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/images", nil)
	if err != nil {
		return nil, fmt.Errorf("creating images request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling /api/images: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var list model.ImageListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding images response: %w", err)
	}
	return list.Images, nil
}

// decodeError turns an error response into a RequestError, keeping
// whatever envelope fields the server managed to send.
func decodeError(resp *http.Response) error {
	reqErr := &RequestError{StatusCode: resp.StatusCode}
	var envelope api.ErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		reqErr.Message = envelope.Error
		reqErr.Details = envelope.Details
	}
	return reqErr
}
