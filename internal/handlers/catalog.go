package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gradientspace.dev/internal/services"
)

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	contentService *services.ContentService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(cs *services.ContentService) *CatalogHandler {
	return &CatalogHandler{contentService: cs}
}

// ListPackages handles GET /api/packages
func (h *CatalogHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.contentService.GetPackages())
}

// GetPackage handles GET /api/packages/{name}
func (h *CatalogHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	pkg, err := h.contentService.GetPackage(name)
	if err != nil {
		respondError(w, http.StatusNotFound, "Package not found")
		return
	}

	respondJSON(w, http.StatusOK, pkg)
}

// ListTestimonials handles GET /api/testimonials
func (h *CatalogHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.contentService.GetTestimonials())
}
