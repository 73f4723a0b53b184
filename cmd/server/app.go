package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/camiones-api/internal/api"
	"github.com/phrazzld/camiones-api/internal/config"
	"github.com/phrazzld/camiones-api/internal/platform/mysql"
	"github.com/phrazzld/camiones-api/internal/service/auth"
	"github.com/phrazzld/camiones-api/internal/service/truck"
)

// application holds the explicitly constructed, dependency-injected service
// graph. Nothing here is a process-wide singleton; tests build their own
// application with doubles in place of the real services.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sql.DB
	truckService api.TruckService
	tokenService auth.TokenService
}

// newApplication wires the full service graph: pool, query builder, store,
// resource service, and token service.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// The table name is resolved from configuration exactly once, here.
	builder := mysql.NewQueryBuilder(cfg.Database.Table)
	truckStore := mysql.NewTruckStore(db, builder, logger)

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		truckService: truck.NewService(truckStore, logger),
		tokenService: tokenService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database pool", "error", err)
	}
}
