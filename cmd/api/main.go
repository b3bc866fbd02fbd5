package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasksync/config"
	_ "tasksync/docs" // Swagger docs
	"tasksync/internal/bootstrap"
	"tasksync/internal/httpserver"
	"tasksync/internal/session"
)

// @title       Tasksync API
// @description Local HTTP surface over the tasksync session and task store.
// @version     1
// @host        localhost:8080
// @schemes     http
// @BasePath    /api/v1
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := bootstrap.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting tasksync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Session and task store
	app := bootstrap.New(cfg, logger)

	status, err := app.Session.Restore(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to restore session: ", err)
		return
	}
	switch status {
	case session.StatusVerified:
		logger.Info(ctx, "Session restored")
	case session.StatusUnreachable:
		logger.Warn(ctx, "Backend unreachable, credential kept; POST /api/v1/session/retry to verify again")
	default:
		logger.Infof(ctx, "No active session (%s)", status)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit:   cfg.RateLimit,
		Session:     app.Session,
		Tasks:       app.Tasks,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
