// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/five25/models"
	"github.com/danielhkuo/five25/session"
	"github.com/danielhkuo/five25/views"
)

// newPage fills the fields every page shares and consumes the flash
func newPage(w http.ResponseWriter, r *http.Request, title string) models.Page {
	page := models.Page{
		Title: title,
		Flash: session.PopFlash(w, r),
	}
	if p, ok := session.PrincipalFrom(r.Context()); ok {
		page.Principal = &p
	}
	return page
}

func serverError(w http.ResponseWriter, r *http.Request, v *views.Renderer, msg string, err error) {
	slog.Error(msg, "error", err, "method", r.Method, "path", r.URL.Path)
	v.Render(w, http.StatusInternalServerError, views.Error, models.ErrorPage{
		Page:    models.Page{Title: http.StatusText(http.StatusInternalServerError)},
		Message: "Something went wrong. Please try again.",
	})
}

func notFound(w http.ResponseWriter, r *http.Request, v *views.Renderer, msg string) {
	page := newPage(w, r, http.StatusText(http.StatusNotFound))
	v.Render(w, http.StatusNotFound, views.Error, models.ErrorPage{Page: page, Message: msg})
}

// listID parses the {list_id} path segment; ok is false for anything
// but a positive integer
func listID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("list_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func tasksPath(id int64) string {
	return "/tasks/" + strconv.FormatInt(id, 10)
}
