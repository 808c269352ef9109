// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/five25/auth"
	"github.com/danielhkuo/five25/models"
	"github.com/danielhkuo/five25/session"
	"github.com/danielhkuo/five25/store"
	"github.com/danielhkuo/five25/views"
)

type AccountHandler struct {
	store    *store.Store
	sessions *session.Manager
	views    *views.Renderer
}

func NewAccountHandler(st *store.Store, sessions *session.Manager, v *views.Renderer) *AccountHandler {
	return &AccountHandler{store: st, sessions: sessions, views: v}
}

// RegisterForm handles GET /register
func (h *AccountHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.Register, models.FormPage{
		Page: newPage(w, r, "Register"),
	})
}

// Register handles POST /register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")

	userID, err := auth.Register(r.Context(), h.store, username, r.FormValue("password"), r.FormValue("confirmation"))
	var verr *auth.ValidationError
	if errors.As(err, &verr) {
		h.views.Render(w, http.StatusBadRequest, views.Register, models.FormPage{
			Page:     newPage(w, r, "Register"),
			Username: username,
			Error:    verr.Message,
		})
		return
	}
	if err != nil {
		serverError(w, r, h.views, "failed to register user", err)
		return
	}

	if _, err := h.sessions.Start(r.Context(), w, userID); err != nil {
		serverError(w, r, h.views, "failed to start session", err)
		return
	}

	slog.Info("user registered", "user_id", userID, "username", username)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LoginForm handles GET /login
// Visiting the login page signs the user out.
func (h *AccountHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r.Context(), w, r); err != nil {
		serverError(w, r, h.views, "failed to clear session", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.Login, models.FormPage{
		Page: newPage(w, r, "Log in"),
	})
}

// Login handles POST /login
// On success it redirects to the user's most recent list, or home.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := r.FormValue("username")

	if err := h.sessions.Revoke(ctx, r); err != nil {
		serverError(w, r, h.views, "failed to clear session", err)
		return
	}

	user, err := auth.Authenticate(ctx, h.store, username, r.FormValue("password"))
	var aerr *auth.AuthError
	if errors.As(err, &aerr) {
		if err := h.sessions.Clear(ctx, w, r); err != nil {
			serverError(w, r, h.views, "failed to clear session", err)
			return
		}
		slog.Info("login failed", "username", username, "reason", aerr.Message)
		h.views.Render(w, http.StatusUnauthorized, views.Login, models.FormPage{
			Page:     newPage(w, r, "Log in"),
			Username: username,
			Error:    aerr.Message,
		})
		return
	}
	if err != nil {
		serverError(w, r, h.views, "failed to authenticate", err)
		return
	}

	if _, err := h.sessions.Start(ctx, w, user.ID); err != nil {
		serverError(w, r, h.views, "failed to start session", err)
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	list, err := h.store.MostRecentList(ctx, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, r, h.views, "failed to query lists", err)
		return
	}

	http.Redirect(w, r, tasksPath(list.ID), http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r.Context(), w, r); err != nil {
		serverError(w, r, h.views, "failed to clear session", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
