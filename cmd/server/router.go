package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/camiones-api/internal/api"
	apiMiddleware "github.com/phrazzld/camiones-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	truckHandler := api.NewTruckHandler(app.truckService, app.logger)
	authHandler := api.NewAuthHandler(app.tokenService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	// Greeting endpoints kept from the original service
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		app.writeText(w, "hello, world!")
	})
	r.Get("/hello", func(w http.ResponseWriter, r *http.Request) {
		app.writeText(w, "Hello World!")
	})

	// Truck resource. Only create is token-guarded; the other mutating
	// routes are deliberately open, preserving the original surface.
	r.Get("/camiones/", truckHandler.List)
	r.Get("/camion/{id}", truckHandler.Get)
	r.With(authMiddleware.RequireToken).Post("/camion/", truckHandler.Create)
	r.Put("/camion/{id}", truckHandler.Update)
	r.Patch("/camion/{id}", truckHandler.Replace)
	r.Delete("/camion/{id}", truckHandler.Delete)

	// Authentication endpoints
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/verifyToken", authHandler.VerifyToken)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		app.writeText(w, "OK")
	})

	return r
}

func (app *application) writeText(w http.ResponseWriter, body string) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		app.logger.Error("failed to write response", "error", err)
	}
}
