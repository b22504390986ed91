package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chartkit/internal/charts"
	"chartkit/internal/config"
	"chartkit/internal/logger"
	"chartkit/internal/server"
	"chartkit/internal/storage"
	"chartkit/internal/theme"
)

// buildServer wires storage, renderer and chart helper for cfg.
func buildServer(ctx context.Context, cfg *config.Config) (*server.Server, error) {
	store, err := storage.NewStorageClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := store.CreateDir(ctx, storage.ChartsDir); err != nil {
		store.Close()
		return nil, err
	}

	th := theme.Dark()
	renderer, err := charts.NewRenderer(cfg.Renderer, th)
	if err != nil {
		store.Close()
		return nil, err
	}

	doc := charts.NewDocument(cfg.ChartWidth, cfg.ChartHeight)
	helper := charts.NewHelper(th, renderer, doc)
	return server.NewServer(cfg, helper, store), nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	defer logger.GetGlobalLogger().Sync()

	logger.Info("Starting chart service", map[string]interface{}{
		"version":     config.GetVersion(),
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"renderer":    cfg.Renderer,
		"storage":     cfg.StorageMode,
	})
	if cfg.StorageMode == config.StorageGCS {
		logger.Info(fmt.Sprintf("GCS Bucket: %s", cfg.GCSBucket))
	} else {
		logger.Info(fmt.Sprintf("Local Charts Dir: %s", cfg.LocalChartsDir))
	}

	srv, err := buildServer(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("Server listening on :%s", cfg.Port))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
