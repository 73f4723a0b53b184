// Package main implements the entry point for the camiones API server,
// a CRUD service over the truck fleet table guarded by a short-lived
// capability token on its mutating route.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/camiones-api/internal/config"
	"github.com/phrazzld/camiones-api/internal/platform/logger"
)

// main initializes configuration, logging, the database pool, and the
// service graph, then runs the HTTP server until shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"table", cfg.Database.Table)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, err
	}
	return app, nil
}
