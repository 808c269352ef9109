// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/five25/cliparse"
	"github.com/danielhkuo/five25/handlers"
	"github.com/danielhkuo/five25/middleware"
	"github.com/danielhkuo/five25/session"
	"github.com/danielhkuo/five25/store"
	"github.com/danielhkuo/five25/views"
)

// NewRouter wires the handlers and returns the mux with the session
// manager it uses, so the caller can sweep expired sessions.
func NewRouter(db *sqlx.DB, cfg cliparse.Config) (*http.ServeMux, *session.Manager, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load templates: %w", err)
	}

	st := store.New(db)
	sessions := session.NewManager(st, cfg.SessionTTL, cfg.SecureCookies)

	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(st, sessions, renderer)
	listHandler := handlers.NewListHandler(st, renderer)
	taskHandler := handlers.NewTaskHandler(st, renderer)
	pageHandler := handlers.NewPageHandler(st, sessions, renderer)

	// guard wraps routes that need a signed-in user
	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireLogin(sessions, h))
	}
	public := middleware.WithLogging

	// Health check
	mux.HandleFunc("GET /health", pageHandler.Health)

	// Accounts
	mux.HandleFunc("GET /register", public(accountHandler.RegisterForm))
	mux.HandleFunc("POST /register", public(accountHandler.Register))
	mux.HandleFunc("GET /login", public(accountHandler.LoginForm))
	mux.HandleFunc("POST /login", public(accountHandler.Login))
	mux.HandleFunc("GET /logout", public(accountHandler.Logout))

	// Lists
	mux.HandleFunc("GET /{$}", guard(listHandler.Index))
	mux.HandleFunc("GET /tasks/{list_id}", guard(listHandler.Tasks))
	mux.HandleFunc("GET /create", guard(listHandler.CreateForm))
	mux.HandleFunc("POST /create", guard(listHandler.Create))
	mux.HandleFunc("GET /add/{list_id}", guard(listHandler.AddForm))
	mux.HandleFunc("POST /add/{list_id}", guard(listHandler.Add))
	mux.HandleFunc("POST /delete_list/{list_id}", guard(listHandler.DeleteList))

	// Tasks
	mux.HandleFunc("POST /focus/{list_id}", guard(taskHandler.Focus))
	mux.HandleFunc("POST /complete/{list_id}", guard(taskHandler.Complete))
	mux.HandleFunc("POST /delete_task/{list_id}", guard(taskHandler.Delete))

	// Static pages
	mux.HandleFunc("GET /about", public(pageHandler.About))
	mux.HandleFunc("/", public(pageHandler.NotFound))

	return mux, sessions, nil
}
