package router

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/leca/ai-photobooth/internal/api"
	"github.com/leca/ai-photobooth/internal/config"
	"github.com/leca/ai-photobooth/internal/gallery"
	"github.com/leca/ai-photobooth/internal/handler"
	"github.com/leca/ai-photobooth/internal/transform"
)

// Server holds the application dependencies and HTTP router.
type Server struct {
	Transformer *transform.Service
	Gallery     *gallery.Index
	Config      *config.Config
	Router      chi.Router
}

// New creates a new Server with a fully configured chi router.
func New(transformer *transform.Service, ix *gallery.Index, cfg *config.Config) *Server {
	s := &Server{Transformer: transformer, Gallery: ix, Config: cfg}

	h := &handler.Handler{
		Transformer: transformer,
		Gallery:     ix,
	}

	r := chi.NewRouter()

	// CORS — must be before other middleware to handle preflight OPTIONS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.RequestID)

	// Health check.
	r.Get("/health", s.Health)

	// Browsers request this unprompted; answer with an empty success
	// instead of a 404.
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// API routes.
	r.Get("/api/images", h.ListImages)
	r.Post("/api/transform", h.Transform)

	// The booth client itself.
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	s.Router = r
	return s
}

// Health returns a simple health-check response.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("failed to encode health response", "error", err)
	}
}
