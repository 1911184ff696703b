package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"gradientspace.dev/internal/metrics"
	"gradientspace.dev/internal/models"
	"gradientspace.dev/internal/render"
	"gradientspace.dev/internal/services"
	"gradientspace.dev/internal/view"
)

// sessionParam carries the page session ID in the query string and forms
const sessionParam = "s"

const sinkFailureMessage = "We could not send your message right now. Please try again."

// PageHandler serves the landing page and its form posts
type PageHandler struct {
	sessions  *services.SessionService
	renderer  *render.Renderer
	inquiries view.Sink
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ss *services.SessionService, rr *render.Renderer, sink view.Sink, m *metrics.Metrics, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		sessions:  ss,
		renderer:  rr,
		inquiries: sink,
		metrics:   m,
		logger:    logger,
	}
}

// Index handles GET /. Without a live session ID it starts a new page
// session and redirects to it.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(sessionParam)
	if id == "" || !h.sessions.Exists(id) {
		h.redirectToPage(w, r, h.sessions.Create())
		return
	}
	h.renderPage(w, id, http.StatusOK, "")
}

// SelectTab handles POST /tab
func (h *PageHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form")
		return
	}
	id := r.PostForm.Get(sessionParam)

	tab, err := models.ParseTab(r.PostForm.Get("tab"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.sessions.With(id, func(st *view.State) error {
		return st.SelectTab(tab)
	})
	if errors.Is(err, services.ErrSessionNotFound) {
		h.redirectToPage(w, r, "")
		return
	}
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	h.metrics.TabSelected(string(tab))
	h.redirectToPage(w, r, id)
}

// Submit handles POST /contact. Posted fields are applied as edits before
// the form is submitted, under the same session lock.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form")
		return
	}
	id := r.PostForm.Get(sessionParam)

	var formErr error
	err := h.sessions.With(id, func(st *view.State) error {
		for _, f := range models.Fields() {
			if !r.PostForm.Has(string(f)) {
				continue
			}
			if err := st.EditField(f, r.PostForm.Get(string(f))); err != nil {
				return err
			}
		}
		if formErr = st.Form().Validate(); formErr != nil {
			return nil
		}
		_, err := st.Submit(r.Context(), h.inquiries)
		return err
	})

	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		h.redirectToPage(w, r, "")
	case formErr != nil:
		h.renderPage(w, id, statusFor(formErr), formErr.Error())
	case errors.Is(err, view.ErrAlreadySubmitted):
		h.renderPage(w, id, http.StatusConflict, "")
	case errors.Is(err, view.ErrUnknownPackage):
		h.renderPage(w, id, http.StatusBadRequest, "Please choose one of our packages.")
	case err != nil:
		h.logger.Error("contact form submission failed", zap.String("session", id), zap.Error(err))
		h.renderPage(w, id, http.StatusBadGateway, sinkFailureMessage)
	default:
		h.redirectToPage(w, r, id)
	}
}

// renderPage draws the session's page with the given status
func (h *PageHandler) renderPage(w http.ResponseWriter, id string, status int, formError string) {
	snap, err := h.sessions.Snapshot(id)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, snap, render.Options{SessionID: id, FormError: formError}); err != nil {
		h.logger.Error("failed to render page", zap.String("session", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// redirectToPage sends the browser back to the page of session id, or to a
// fresh page when id is empty
func (h *PageHandler) redirectToPage(w http.ResponseWriter, r *http.Request, id string) {
	target := "/"
	if id != "" {
		target = "/?" + url.Values{sessionParam: {id}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
