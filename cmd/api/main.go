package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todosplus/config"
	_ "todosplus/docs" // Swagger docs
	"todosplus/internal/capture"
	"todosplus/internal/capture/extractor"
	"todosplus/internal/httpserver"
	"todosplus/pkg/llmclient"
	"todosplus/pkg/log"
)

// @title       TodosPlus API
// @description Personal task management with natural-language scheduling and AI capture.
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

	logger.Info(ctx, "Starting TodosPlus...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default timezone: %s", cfg.Schedule.DefaultTimezone)

	// 3. AI capture extractor (optional)
	var ext capture.Extractor
	if cfg.Capture.APIKey != "" {
		chat, chatErr := llmclient.New(llmclient.Config{
			APIKey:  cfg.Capture.APIKey,
			BaseURL: cfg.Capture.BaseURL,
			Model:   cfg.Capture.Model,
		})
		if chatErr != nil {
			logger.Warnf(ctx, "Capture disabled, bad LLM config: %v", chatErr)
		} else {
			ext = extractor.New(logger, chat)
			logger.Infof(ctx, "Capture enabled with model %s", chat.Model())
		}
	} else {
		logger.Warn(ctx, "Capture skipped: CAPTURE_API_KEY is missing")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		DefaultTimezone:        cfg.Schedule.DefaultTimezone,
		CaptureRateLimitPerMin: cfg.Capture.RateLimitPerMin,
		Extractor:              ext,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
