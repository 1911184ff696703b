package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"gradientspace.dev/internal/metrics"
	"gradientspace.dev/internal/middleware"
	"gradientspace.dev/internal/models"
	"gradientspace.dev/internal/render"
	"gradientspace.dev/internal/services"
	"gradientspace.dev/internal/view"
)

// Dependencies are the services the routes are built on
type Dependencies struct {
	Content   *services.ContentService
	Sessions  *services.SessionService
	Inquiries view.Sink
	Renderer  *render.Renderer
	Metrics   *metrics.Metrics // nil disables /metrics
	Logger    *zap.Logger
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Dependencies) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}

	// Initialize handlers
	pageHandler := NewPageHandler(d.Sessions, d.Renderer, d.Inquiries, d.Metrics, logger)
	sessionHandler := NewSessionHandler(d.Sessions, d.Metrics)
	catalogHandler := NewCatalogHandler(d.Content)

	// Page routes
	r.Get("/", pageHandler.Index)
	r.Post("/tab", pageHandler.SelectTab)
	r.Post("/contact", pageHandler.Submit)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Page session endpoints, called by the page script
		r.Post("/sessions/{id}/fields", sessionHandler.EditField)
		r.Post("/sessions/{id}/reveal", sessionHandler.Reveal)

		// Catalog endpoints
		r.Get("/packages", catalogHandler.ListPackages)
		r.Get("/packages/{name}", catalogHandler.GetPackage)
		r.Get("/testimonials", catalogHandler.ListTestimonials)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	// Static files
	fileServer := http.FileServer(http.FS(render.Static()))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, view.ErrAlreadySubmitted),
		errors.Is(err, view.ErrSectionNotMounted):
		return http.StatusConflict
	case errors.Is(err, models.ErrUnknownTab),
		errors.Is(err, models.ErrUnknownField),
		errors.Is(err, view.ErrUnknownPackage):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrInvalidEmail):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
