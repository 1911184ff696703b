package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gradientspace.dev/internal/metrics"
	"gradientspace.dev/internal/models"
	"gradientspace.dev/internal/services"
	"gradientspace.dev/internal/view"
)

// SessionHandler handles the page script's calls into a page session
type SessionHandler struct {
	sessions *services.SessionService
	metrics  *metrics.Metrics
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(ss *services.SessionService, m *metrics.Metrics) *SessionHandler {
	return &SessionHandler{sessions: ss, metrics: m}
}

// EditField handles POST /api/sessions/{id}/fields
func (h *SessionHandler) EditField(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	field, err := models.ParseField(req.Field)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var form models.ContactFormData
	err = h.sessions.With(chi.URLParam(r, "id"), func(st *view.State) error {
		if err := st.EditField(field, req.Value); err != nil {
			return err
		}
		form = st.Form()
		return nil
	})
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, form)
}

// Reveal handles POST /api/sessions/{id}/reveal - a visibility notification
// for one fade-in section
func (h *SessionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Section models.SectionID `json:"section"`
		Ratio   float64          `json:"ratio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !(req.Ratio >= 0 && req.Ratio <= 1) {
		respondError(w, http.StatusBadRequest, "ratio must be between 0 and 1")
		return
	}

	var before, after bool
	err := h.sessions.With(chi.URLParam(r, "id"), func(st *view.State) error {
		before = st.Revealed(req.Section)
		var err error
		after, err = st.Observe(req.Section, req.Ratio)
		return err
	})
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	if after && !before {
		h.metrics.SectionRevealed(string(req.Section))
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"section":  req.Section,
		"revealed": after,
	})
}
