// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/five25/middleware"
	"github.com/danielhkuo/five25/session"
	"github.com/danielhkuo/five25/store"
	"github.com/danielhkuo/five25/views"
)

type PageHandler struct {
	store    *store.Store
	sessions *session.Manager
	views    *views.Renderer
}

func NewPageHandler(st *store.Store, sessions *session.Manager, v *views.Renderer) *PageHandler {
	return &PageHandler{store: st, sessions: sessions, views: v}
}

// About handles GET /about
// Public; the principal is looked up only to pick the nav links.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	if p, err := h.sessions.Load(r.Context(), r); err == nil {
		r = r.WithContext(session.WithPrincipal(r.Context(), p))
	}

	h.views.Render(w, http.StatusOK, views.About, newPage(w, r, "About"))
}

// Health handles GET /health
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DB().PingContext(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound renders the 404 page for unmatched paths
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	notFound(w, r, h.views, "Page not found")
}
