package handler

import (
	"github.com/leca/ai-photobooth/internal/gallery"
	"github.com/leca/ai-photobooth/internal/transform"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	Transformer *transform.Service
	Gallery     *gallery.Index
}
