package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/leca/ai-photobooth/internal/api"
	"github.com/leca/ai-photobooth/internal/imageproc"
	"github.com/leca/ai-photobooth/internal/model"
	"github.com/leca/ai-photobooth/internal/transform"
)

// maxTransformBody bounds the request body; data-URL images from the
// booth stay well under this.
const maxTransformBody = 10 << 20

// Transform handles POST /api/transform.
func (h *Handler) Transform(w http.ResponseWriter, r *http.Request) {
	requestID := api.GetRequestID(r.Context())
	slog.Info("received transform request", "request_id", requestID)

	r.Body = http.MaxBytesReader(w, r.Body, maxTransformBody)

	var req model.TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if req.Image == "" {
		api.WriteJSON(w, http.StatusBadRequest, api.ErrorBody{Error: "No image data provided"})
		return
	}

	result, err := h.Transformer.Transform(r.Context(), transform.Request{
		Image:  req.Image,
		Prompt: req.Prompt,
	})
	if err != nil {
		slog.Error("transform pipeline failed", "request_id", requestID, "error", err)
		if errors.Is(err, imageproc.ErrMalformedInput) {
			api.WriteError(w, http.StatusBadRequest, "Invalid image data", err.Error())
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "Failed to transform image", err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, model.TransformResponse{
		Success:                true,
		TransformedImage:       result.TransformedImage,
		FirebaseOriginalURL:    result.OriginalURL,
		FirebaseTransformedURL: result.TransformedURL,
	})
}
