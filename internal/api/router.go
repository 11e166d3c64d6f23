package api

import (
	"net/http"
	"transport-tycoon/internal/api/handlers"
	"transport-tycoon/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(opts services.Options, logger *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	healthHandler := &handlers.HealthHandler{Logger: logger}
	simHandler := &handlers.SimulationHandler{Options: opts, Logger: logger}

	r.Get("/health", healthHandler.Check)
	r.Post("/simulations", simHandler.Run)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, r, logger, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
