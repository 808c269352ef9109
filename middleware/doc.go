// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /about", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms).

# Auth Guard

RequireLogin gates a handler on a valid session:

	mux.HandleFunc("GET /", middleware.WithLogging(
		middleware.RequireLogin(sessions, listHandler.Index)))

Requests without a session are redirected to /login with 302 and the
wrapped handler never runs. Otherwise the principal is available via
session.PrincipalFrom(r.Context()).

# JSON Helper

Used by the health endpoint:

	middleware.JSONResponse(w, http.StatusOK, data)

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
