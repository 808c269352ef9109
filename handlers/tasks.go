// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/five25/store"
	"github.com/danielhkuo/five25/views"
)

// TaskHandler applies one operation to the tasks named by the
// repeated "task" form field, then returns to the list.
// Unknown lists and names are silently ignored.
type TaskHandler struct {
	store *store.Store
	views *views.Renderer
}

func NewTaskHandler(st *store.Store, v *views.Renderer) *TaskHandler {
	return &TaskHandler{store: st, views: v}
}

// Focus handles POST /focus/{list_id}
func (h *TaskHandler) Focus(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "toggle focus", h.store.ToggleFocus)
}

// Complete handles POST /complete/{list_id}
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "complete tasks", h.store.CompleteTasks)
}

// Delete handles POST /delete_task/{list_id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "delete tasks", h.store.DeleteTasks)
}

func (h *TaskHandler) apply(w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context, listID int64, names []string) error) {
	id, ok := listID(r)
	if !ok {
		notFound(w, r, h.views, "List not found")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	names := r.PostForm["task"]

	if err := fn(r.Context(), id, names); err != nil {
		serverError(w, r, h.views, "failed to "+op, err)
		return
	}

	slog.Info("tasks updated", "op", op, "list_id", id, "count", len(names))

	http.Redirect(w, r, tasksPath(id), http.StatusSeeOther)
}
