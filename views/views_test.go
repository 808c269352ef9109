// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/five25/models"
)

func TestNew(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, name := range pages {
		if _, ok := r.pages[name]; !ok {
			t.Errorf("page %s not parsed", name)
		}
	}
}

func TestRender(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	principal := &models.Principal{UserID: 1}
	created := time.Now().Add(-3 * time.Hour)

	tests := []struct {
		name     string
		page     string
		data     any
		contains []string
	}{
		{
			name: "index",
			page: Index,
			data: models.IndexPage{
				Page:     models.Page{Title: "Lists", Principal: principal},
				Username: "alice",
				Lists:    []models.List{{ID: 7, Title: "Groceries", Created: created}},
			},
			contains: []string{"alice", `href="/tasks/7"`, "Groceries", "3 hours ago", "Log out"},
		},
		{
			name: "tasks",
			page: Tasks,
			data: models.TasksPage{
				Page: models.Page{Title: "Groceries", Principal: principal, Flash: models.FlashListCreated},
				List: models.List{ID: 7, Title: "Groceries"},
				View: models.TaskView{Focus: []string{"milk"}, Distractions: []string{"eggs", "tea"}, Completed: []string{"bread"}},
			},
			contains: []string{models.FlashListCreated, "milk", "eggs", "bread", "1 task", "2 tasks", "/focus/7", "/complete/7", "/delete_task/7", "/delete_list/7", "/add/7"},
		},
		{
			name:     "register with error",
			page:     Register,
			data:     models.FormPage{Page: models.Page{Title: "Register"}, Error: "Username is required."},
			contains: []string{"Username is required.", `action="/register"`, "Log in"},
		},
		{
			name:     "login",
			page:     Login,
			data:     models.FormPage{Page: models.Page{Title: "Log in"}, Username: "bob"},
			contains: []string{`value="bob"`, `action="/login"`},
		},
		{
			name:     "add",
			page:     Add,
			data:     models.AddPage{Page: models.Page{Principal: principal}, List: models.List{ID: 3, Title: "Work"}},
			contains: []string{"Add to Work", `action="/add/3"`},
		},
		{
			name:     "error",
			page:     Error,
			data:     models.ErrorPage{Page: models.Page{Title: "Not Found"}, Message: "List not found"},
			contains: []string{"Not Found", "List not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.Render(w, http.StatusOK, tt.page, tt.data)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("unexpected content type %q", ct)
			}
			body := w.Body.String()
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestRender_EscapesUserInput(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, Tasks, models.TasksPage{
		List: models.List{ID: 1, Title: "<script>alert(1)</script>"},
		View: models.TaskView{Focus: []string{"<b>x</b>"}},
	})

	body := w.Body.String()
	if strings.Contains(body, "<script>alert(1)</script>") || strings.Contains(body, "<b>x</b>") {
		t.Error("user input was not escaped")
	}
}

func TestRender_Status(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r.Render(w, http.StatusBadRequest, Register, models.FormPage{Error: "bad"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, "missing.html", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
