// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/five25/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	mux, _, err := NewRouter(db, testutil.GetTestConfig())
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	return mux
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestPublicPages(t *testing.T) {
	mux := newTestRouter(t)

	for _, path := range []string{"/register", "/login", "/about"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
	if !strings.Contains(w.Body.String(), "Page not found") {
		t.Error("Expected not found page")
	}
}

func TestGuardedRoutesRedirectToLogin(t *testing.T) {
	mux := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/"},
		{"GET", "/tasks/1"},
		{"GET", "/create"},
		{"POST", "/create"},
		{"GET", "/add/1"},
		{"POST", "/add/1"},
		{"POST", "/delete_list/1"},
		{"POST", "/focus/1"},
		{"POST", "/complete/1"},
		{"POST", "/delete_task/1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			req.AddCookie(&http.Cookie{Name: "five25_session", Value: "00000000-0000-0000-0000-000000000000"})
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertRedirect(t, w, http.StatusFound, "/login")
		})
	}
}

// TestFullWorkflow drives the app like a browser:
// 1. Register and land on the empty index
// 2. Create a list and see the flash
// 3. Mark a distraction, complete a task, add and delete tasks
// 4. Log out, log back in and land on the list
// 5. Delete the list
func TestFullWorkflow(t *testing.T) {
	server := httptest.NewServer(newTestRouter(t))
	defer server.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Jar: jar}

	do := func(method, path string, form url.Values) (*http.Response, string) {
		t.Helper()
		var body io.Reader
		if form != nil {
			body = strings.NewReader(form.Encode())
		}
		req, err := http.NewRequest(method, server.URL+path, body)
		if err != nil {
			t.Fatal(err)
		}
		if form != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("%s %s failed: %v", method, path, err)
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return resp, string(b)
	}

	// Step 1: Register
	resp, body := do("POST", "/register", url.Values{
		"username":     {"alice"},
		"password":     {"secret"},
		"confirmation": {"secret"},
	})
	if resp.StatusCode != http.StatusOK || resp.Request.URL.Path != "/" {
		t.Fatalf("Step 1 - expected index, got %d at %s", resp.StatusCode, resp.Request.URL.Path)
	}
	if !strings.Contains(body, "No lists yet") {
		t.Fatal("Step 1 - expected empty index")
	}

	// Step 2: Create a list
	resp, body = do("POST", "/create", url.Values{
		"title": {"Week"},
		"tasks": {"Write report\nRead news\nCall mom"},
	})
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Request.URL.Path, "/tasks/") {
		t.Fatalf("Step 2 - expected list page, got %d at %s", resp.StatusCode, resp.Request.URL.Path)
	}
	listPath := resp.Request.URL.Path
	listID := strings.TrimPrefix(listPath, "/tasks/")
	if !strings.Contains(body, "Your list has been created.") {
		t.Error("Step 2 - expected flash message")
	}

	_, body = do("GET", listPath, nil)
	if strings.Contains(body, "Your list has been created.") {
		t.Error("Step 2 - flash shown twice")
	}

	// Step 3: Work the list
	do("POST", "/focus/"+listID, url.Values{"task": {"Read news"}})
	do("POST", "/complete/"+listID, url.Values{"task": {"Call mom"}})
	do("POST", "/add/"+listID, url.Values{"task": {"Buy milk"}})
	_, body = do("POST", "/delete_task/"+listID, url.Values{"task": {"Write report"}})

	for _, want := range []string{"Focus (1 task)", "Distractions (1 task)", "<s>Call mom</s>", "Buy milk"} {
		if !strings.Contains(body, want) {
			t.Errorf("Step 3 - expected %q in list page", want)
		}
	}
	if strings.Contains(body, "Write report") {
		t.Error("Step 3 - deleted task still shown")
	}

	// Step 4: Log out and back in
	resp, _ = do("GET", "/logout", nil)
	if resp.Request.URL.Path != "/login" {
		t.Errorf("Step 4 - expected login after logout, got %s", resp.Request.URL.Path)
	}

	resp, _ = do("POST", "/login", url.Values{"username": {"alice"}, "password": {"secret"}})
	if resp.Request.URL.Path != listPath {
		t.Errorf("Step 4 - expected most recent list %s, got %s", listPath, resp.Request.URL.Path)
	}

	// Step 5: Delete the list
	resp, body = do("POST", "/delete_list/"+listID, nil)
	if resp.Request.URL.Path != "/" || !strings.Contains(body, "No lists yet") {
		t.Errorf("Step 5 - expected empty index, got %s", resp.Request.URL.Path)
	}

	resp, _ = do("GET", listPath, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Step 5 - expected 404 for deleted list, got %d", resp.StatusCode)
	}
}
