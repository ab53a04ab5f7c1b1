package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/leca/ai-photobooth/internal/blobstore"
	"github.com/leca/ai-photobooth/internal/config"
	"github.com/leca/ai-photobooth/internal/gallery"
	"github.com/leca/ai-photobooth/internal/provider"
	"github.com/leca/ai-photobooth/internal/router"
	"github.com/leca/ai-photobooth/internal/transform"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	if err := transform.EnsureSpoolDirs(cfg.UploadsDir, cfg.OutputsDir); err != nil {
		slog.Error("failed to create spool directories", "error", err)
		os.Exit(1)
	}

	store, err := blobstore.NewMinIO(context.Background(),
		cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.PublicBaseURL, cfg.S3UseSSL)
	if err != nil {
		slog.Error("failed to connect to blob store", "error", err)
		os.Exit(1)
	}

	editor := provider.NewOpenAI(cfg.ProviderBaseURL, cfg.ProviderAPIKey, cfg.ProviderModel, cfg.ProviderTimeout)

	svc := transform.NewService(store, editor, cfg.UploadsDir, cfg.OutputsDir, cfg.ProviderSize)
	ix := gallery.NewIndex(store)

	srv := router.New(svc, ix, cfg)

	slog.Info("starting server", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
