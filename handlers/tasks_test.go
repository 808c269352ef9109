// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/danielhkuo/five25/models"
	"github.com/danielhkuo/five25/testutil"
)

func postTasks(t *testing.T, env *testEnv, fn http.HandlerFunc, userID, listID int64, names ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := asUser(testutil.MakeFormRequest("POST", "/", url.Values{"task": names}), userID)
	req.SetPathValue("list_id", fmt.Sprint(listID))
	w := httptest.NewRecorder()
	fn(w, req)
	return w
}

func viewOf(t *testing.T, env *testEnv, listID int64) models.TaskView {
	t.Helper()
	view, err := env.store.ViewList(t.Context(), listID)
	if err != nil {
		t.Fatalf("Failed to view list: %v", err)
	}
	return view
}

func TestFocus(t *testing.T) {
	env := setupEnv(t)
	handler := NewTaskHandler(env.store, env.views)
	userID := testutil.CreateTestUser(t, env.db, "alice", "secret")
	id := testutil.CreateTestList(t, env.db, userID, "Week", time.Now(), "a", "b", "c")

	w := postTasks(t, env, handler.Focus, userID, id, "a", "c")
	testutil.AssertRedirect(t, w, http.StatusSeeOther, tasksPath(id))

	got := viewOf(t, env, id)
	want := models.TaskView{Focus: []string{"b"}, Distractions: []string{"a", "c"}, Completed: []string{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("After first toggle got %+v, want %+v", got, want)
	}

	postTasks(t, env, handler.Focus, userID, id, "a")

	got = viewOf(t, env, id)
	want = models.TaskView{Focus: []string{"a", "b"}, Distractions: []string{"c"}, Completed: []string{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("After second toggle got %+v, want %+v", got, want)
	}
}

func TestComplete(t *testing.T) {
	env := setupEnv(t)
	handler := NewTaskHandler(env.store, env.views)
	userID := testutil.CreateTestUser(t, env.db, "alice", "secret")
	id := testutil.CreateTestList(t, env.db, userID, "Week", time.Now(), "a", "b")

	w := postTasks(t, env, handler.Complete, userID, id, "b")
	testutil.AssertRedirect(t, w, http.StatusSeeOther, tasksPath(id))

	got := viewOf(t, env, id)
	want := models.TaskView{Focus: []string{"a"}, Distractions: []string{}, Completed: []string{"b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDeleteTask(t *testing.T) {
	env := setupEnv(t)
	handler := NewTaskHandler(env.store, env.views)
	userID := testutil.CreateTestUser(t, env.db, "alice", "secret")
	id := testutil.CreateTestList(t, env.db, userID, "Week", time.Now(), "a", "b")

	w := postTasks(t, env, handler.Delete, userID, id, "a", "missing")
	testutil.AssertRedirect(t, w, http.StatusSeeOther, tasksPath(id))

	if n := testutil.CountRows(t, env.db, "tasks", "list_id = ?", id); n != 1 {
		t.Errorf("Expected 1 task left, got %d", n)
	}
}

func TestTaskOps_NothingSelected(t *testing.T) {
	env := setupEnv(t)
	handler := NewTaskHandler(env.store, env.views)
	userID := testutil.CreateTestUser(t, env.db, "alice", "secret")
	id := testutil.CreateTestList(t, env.db, userID, "Week", time.Now(), "a")

	for name, fn := range map[string]http.HandlerFunc{
		"focus":    handler.Focus,
		"complete": handler.Complete,
		"delete":   handler.Delete,
	} {
		w := postTasks(t, env, fn, userID, id)
		if w.Code != http.StatusSeeOther {
			t.Errorf("%s: expected 303, got %d", name, w.Code)
		}
	}

	got := viewOf(t, env, id)
	want := models.TaskView{Focus: []string{"a"}, Distractions: []string{}, Completed: []string{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTaskOps_BadListID(t *testing.T) {
	env := setupEnv(t)
	handler := NewTaskHandler(env.store, env.views)

	req := asUser(testutil.MakeFormRequest("POST", "/focus/x", url.Values{"task": {"a"}}), 1)
	req.SetPathValue("list_id", "x")
	w := httptest.NewRecorder()

	handler.Focus(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
