package transform

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leca/ai-photobooth/internal/blobstore"
	"github.com/leca/ai-photobooth/internal/imageproc"
	"github.com/leca/ai-photobooth/internal/provider"
)

// DefaultPrompt is used when the request carries no prompt text.
const DefaultPrompt = "Stylize this image. Enhance its features and apply an artistic touch, " +
	"maintaining the original subject's likeness but presenting it in a visually interesting style."

// Request is one user-initiated transform: a data-URL image plus an
// optional prompt.
type Request struct {
	Image  string
	Prompt string
}

// Result is the outcome of a successful transform. It is never partially
// populated.
type Result struct {
	TransformedImage string
	OriginalURL      string
	TransformedURL   string
}

// Service drives the transform pipeline: ingest, spool, upload the
// original, call the edit provider, spool and upload the result. Each
// invocation is independent; transient spool files are uniquely named and
// removed on every exit path.
type Service struct {
	store      blobstore.Store
	editor     provider.ImageEditor
	uploadsDir string
	outputsDir string
	size       string
}

// NewService creates a transform service spooling into the two given
// directories. size is the fixed target size passed to the provider.
func NewService(store blobstore.Store, editor provider.ImageEditor, uploadsDir, outputsDir, size string) *Service {
	return &Service{
		store:      store,
		editor:     editor,
		uploadsDir: uploadsDir,
		outputsDir: outputsDir,
		size:       size,
	}
}

// EnsureSpoolDirs creates the transient spool directories. It is
// idempotent and called once at startup.
func EnsureSpoolDirs(uploadsDir, outputsDir string) error {
	for _, dir := range []string{uploadsDir, outputsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating spool directory %s: %w", dir, err)
		}
	}
	return nil
}

// Transform runs the full pipeline for one request. Failures are typed:
// ErrNoImage or imageproc.ErrMalformedInput for bad input, a
// *imageproc.ConversionError for codec failures, a *StorageError for
// spool or upload failures, and provider errors passed through unchanged.
func (s *Service) Transform(ctx context.Context, req Request) (*Result, error) {
	if req.Image == "" {
		return nil, ErrNoImage
	}

	payload, err := imageproc.Ingest(req.Image)
	if err != nil {
		return nil, err
	}

	token := newToken()

	// Every spool file written below is deleted when the pipeline exits,
	// whatever the outcome. Deletion failures are logged and never change
	// the result already computed.
	var spooled []string
	defer func() {
		for _, path := range spooled {
			if rmErr := os.Remove(path); rmErr != nil {
				slog.Error("failed to delete transient file", "path", path, "error", rmErr)
			}
		}
	}()

	uploadName := "upload_" + token + ".png"
	uploadPath := filepath.Join(s.uploadsDir, uploadName)
	if err := os.WriteFile(uploadPath, payload.Data, 0644); err != nil {
		return nil, &StorageError{Op: "spooling original", Err: err}
	}
	spooled = append(spooled, uploadPath)

	originalURL, err := s.store.Put(ctx, "uploads/"+uploadName, bytes.NewReader(payload.Data), int64(len(payload.Data)), "image/png")
	if err != nil {
		return nil, &StorageError{Op: "uploading original", Err: err}
	}
	slog.Info("original image uploaded", "url", originalURL)

	prompt := resolvePrompt(req.Prompt)
	b64, err := s.editor.Edit(ctx, payload.Data, prompt, s.size)
	if err != nil {
		return nil, err
	}

	output, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decoding transformed image: %w", err)
	}

	outputName := "transformed_" + token + ".png"
	outputPath := filepath.Join(s.outputsDir, outputName)
	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return nil, &StorageError{Op: "spooling transformed image", Err: err}
	}
	spooled = append(spooled, outputPath)

	transformedURL, err := s.store.Put(ctx, "outputs/"+outputName, bytes.NewReader(output), int64(len(output)), "image/png")
	if err != nil {
		return nil, &StorageError{Op: "uploading transformed image", Err: err}
	}
	slog.Info("transformed image uploaded", "url", transformedURL)

	return &Result{
		TransformedImage: "data:image/png;base64," + b64,
		OriginalURL:      originalURL,
		TransformedURL:   transformedURL,
	}, nil
}

// resolvePrompt returns the trimmed user prompt, or DefaultPrompt when
// blank. Resolution happens here, at processing time, so input validation
// never depends on the default.
func resolvePrompt(userPrompt string) string {
	if p := strings.TrimSpace(userPrompt); p != "" {
		return p
	}
	return DefaultPrompt
}

// newToken builds a unique per-request name fragment. The millisecond
// timestamp keeps keys chronologically sortable; the uuid fragment guards
// against two requests landing in the same millisecond.
func newToken() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + uuid.New().String()[:8]
}
