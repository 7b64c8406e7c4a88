package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github-event-monitor/config"
	_ "github-event-monitor/docs" // Swagger docs
	"github-event-monitor/internal/database"
	"github-event-monitor/internal/httpserver"
	"github-event-monitor/pkg/log"
)

// @title       GitHub Event Monitor API
// @description Receives GitHub webhook deliveries, normalizes push / pull request / merge events into canonical records, and serves human-readable summaries for UI polling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub Event Monitor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Storage
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	// 4. Webhook address: auto-detect ngrok when no public URL is configured,
	// so the address to paste into GitHub shows up in the startup log.
	publicURL := cfg.Webhook.PublicURL
	if publicURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://localhost:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL (webhook address must be configured manually): %v", ngrokErr)
		} else {
			publicURL = ngrokURL
		}
	}
	if publicURL != "" {
		logger.Infof(ctx, "Configure your GitHub webhook to deliver to %s/webhook", publicURL)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
