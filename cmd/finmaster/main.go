package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"finmaster/internal/assets"
	"finmaster/internal/config"
	"finmaster/internal/core"
	apphttp "finmaster/internal/http"
	"finmaster/internal/relay"
	"finmaster/internal/session"
)

func main() {
	// Load .env for local development; optional in production.
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.CreateURL == "" || cfg.UpdateURL == "" {
		logger.Warn("Workflow endpoints not configured; sync attempts will be reported as failures")
	}

	tax := core.TaxonomyFromFiles(cfg.DataDir)
	logger.Info("Loaded taxonomy",
		"categories", len(tax.Categories), "types", len(tax.Types), "modes", len(tax.Modes))

	// Decorative animations are fetched once at startup, best-effort.
	loader := assets.NewLoader(cfg.AssetTimeout)
	anims := loader.FetchAll(context.Background(), cfg.AssetURLs())
	for name, anim := range anims {
		logger.Info("Decorative asset", "name", name, "present", anim != nil)
	}

	registry := session.NewRegistry(tax, cfg.SessionTTL)
	syncer := relay.NewClient(cfg.CreateURL, cfg.UpdateURL, cfg.SyncTimeout)
	idGen := core.NewIDGenerator(nil)

	srv := apphttp.NewServer(":"+cfg.Port, tax, registry, syncer, idGen, anims)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		registry.Stop()
		cancel()
	}()

	logger.Info("Starting finmaster server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
