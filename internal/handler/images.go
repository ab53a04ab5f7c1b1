package handler

import (
	"log/slog"
	"net/http"

	"github.com/leca/ai-photobooth/internal/api"
	"github.com/leca/ai-photobooth/internal/model"
)

// ListImages handles GET /api/images.
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.Gallery.List(r.Context())
	if err != nil {
		slog.Error("failed to list images", "error", err)
		api.WriteError(w, http.StatusInternalServerError, "Failed to list images", err.Error())
		return
	}
	if images == nil {
		images = []model.GalleryImage{}
	}
	api.WriteJSON(w, http.StatusOK, model.ImageListResponse{Images: images})
}
