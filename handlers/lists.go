// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/five25/models"
	"github.com/danielhkuo/five25/session"
	"github.com/danielhkuo/five25/store"
	"github.com/danielhkuo/five25/views"
)

type ListHandler struct {
	store *store.Store
	views *views.Renderer
}

func NewListHandler(st *store.Store, v *views.Renderer) *ListHandler {
	return &ListHandler{store: st, views: v}
}

// Index handles GET /
// Shows the user's lists, newest first.
func (h *ListHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := session.PrincipalFrom(ctx)

	user, err := h.store.UserByID(ctx, p.UserID)
	if err != nil {
		serverError(w, r, h.views, "failed to query user", err)
		return
	}

	lists, err := h.store.ListsByUser(ctx, p.UserID)
	if err != nil {
		serverError(w, r, h.views, "failed to query lists", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.Index, models.IndexPage{
		Page:     newPage(w, r, "Lists"),
		Username: user.Username,
		Lists:    lists,
	})
}

// Tasks handles GET /tasks/{list_id}
func (h *ListHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	id, ok := listID(r)
	if !ok {
		notFound(w, r, h.views, "List not found")
		return
	}

	list, ok := h.getList(w, r, id)
	if !ok {
		return
	}

	view, err := h.store.ViewList(r.Context(), id)
	if err != nil {
		serverError(w, r, h.views, "failed to query tasks", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.Tasks, models.TasksPage{
		Page: newPage(w, r, list.Title),
		List: *list,
		View: view,
	})
}

// CreateForm handles GET /create
func (h *ListHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.Create, models.FormPage{
		Page: newPage(w, r, "New list"),
	})
}

// Create handles POST /create
// Task names come from repeated "task" fields and from the "tasks"
// textarea, one per line. Blank names are skipped.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := session.PrincipalFrom(ctx)

	if err := r.ParseForm(); err != nil {
		h.views.Render(w, http.StatusBadRequest, views.Create, models.FormPage{
			Page:  newPage(w, r, "New list"),
			Error: "Invalid form.",
		})
		return
	}

	title := strings.TrimSpace(r.PostFormValue("title"))
	if title == "" {
		h.views.Render(w, http.StatusBadRequest, views.Create, models.FormPage{
			Page:  newPage(w, r, "New list"),
			Error: "Title is required.",
		})
		return
	}

	names := taskNames(r.PostForm["task"], r.PostFormValue("tasks"))

	id, err := h.store.CreateList(ctx, p.UserID, title, names)
	if err != nil {
		serverError(w, r, h.views, "failed to create list", err)
		return
	}

	slog.Info("list created", "list_id", id, "user_id", p.UserID, "tasks", len(names))

	session.SetFlash(w, models.FlashListCreated)
	http.Redirect(w, r, tasksPath(id), http.StatusSeeOther)
}

// AddForm handles GET /add/{list_id}
func (h *ListHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	id, ok := listID(r)
	if !ok {
		notFound(w, r, h.views, "List not found")
		return
	}

	list, ok := h.getList(w, r, id)
	if !ok {
		return
	}

	h.views.Render(w, http.StatusOK, views.Add, models.AddPage{
		Page: newPage(w, r, "Add to "+list.Title),
		List: *list,
	})
}

// Add handles POST /add/{list_id}
func (h *ListHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := listID(r)
	if !ok {
		notFound(w, r, h.views, "List not found")
		return
	}

	list, ok := h.getList(w, r, id)
	if !ok {
		return
	}

	name := strings.TrimSpace(r.PostFormValue("task"))
	if name == "" {
		h.views.Render(w, http.StatusBadRequest, views.Add, models.AddPage{
			Page:  newPage(w, r, "Add to "+list.Title),
			List:  *list,
			Error: "Task is required.",
		})
		return
	}

	if err := h.store.AddTask(r.Context(), id, name); err != nil {
		serverError(w, r, h.views, "failed to add task", err)
		return
	}

	slog.Info("task added", "list_id", id)

	http.Redirect(w, r, tasksPath(id), http.StatusSeeOther)
}

// DeleteList handles POST /delete_list/{list_id}
// Any signed-in user may delete any list; ownership is not checked.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, ok := listID(r)
	if !ok {
		notFound(w, r, h.views, "List not found")
		return
	}

	ctx := r.Context()
	n, err := h.store.CountTasks(ctx, id)
	if err != nil {
		serverError(w, r, h.views, "failed to count tasks", err)
		return
	}

	if err := h.store.DeleteList(ctx, id); err != nil {
		serverError(w, r, h.views, "failed to delete list", err)
		return
	}

	slog.Info("list deleted", "list_id", id, "tasks", n)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// getList loads the list or writes a 404/500 page
func (h *ListHandler) getList(w http.ResponseWriter, r *http.Request, id int64) (*models.List, bool) {
	list, err := h.store.GetList(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, r, h.views, "List not found")
		return nil, false
	}
	if err != nil {
		serverError(w, r, h.views, "failed to query list", err)
		return nil, false
	}
	return list, true
}

// taskNames merges repeated fields and textarea lines, dropping blanks
func taskNames(fields []string, block string) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			names = append(names, f)
		}
	}
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}
