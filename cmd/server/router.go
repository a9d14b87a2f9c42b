package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/scora-api/internal/api"
	apiMiddleware "github.com/phrazzld/scora-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	explanationHandler := api.NewExplanationHandler(app.explanationService, app.logger)
	scoreHandler := api.NewScoreHandler(app.scorer, app.logger)
	exportHandler := api.NewExportHandler(app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/explanations", explanationHandler.CreateExplanation)
		r.Post("/explanations/export", exportHandler.ExportExplanations)
		r.Post("/answers/score", scoreHandler.SubmitAnswer)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
