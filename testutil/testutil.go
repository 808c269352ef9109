// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/five25/cliparse"
	"github.com/danielhkuo/five25/db"
)

// SetupTestDB creates a fresh sqlite database with the full schema.
// The file lives in t.TempDir and is removed with it.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "five25.db")
	conn, err := db.Open(context.Background(), db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  "five25-test.db",
		DatabaseType: db.DialectSQLite,
		SessionTTL:   time.Hour,
	}
}

// CreateTestUser inserts a user with a bcrypt hash and returns its id
func CreateTestUser(t *testing.T, conn *sqlx.DB, username, password string) int64 {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if _, err := conn.Exec(`INSERT INTO users (username, password) VALUES (?, ?)`, username, string(hash)); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	var id int64
	if err := conn.Get(&id, `SELECT id FROM users WHERE username = ?`, username); err != nil {
		t.Fatalf("Failed to read test user: %v", err)
	}
	return id
}

// CreateTestList inserts a list with focused, uncompleted tasks
func CreateTestList(t *testing.T, conn *sqlx.DB, userID int64, title string, created time.Time, tasks ...string) int64 {
	t.Helper()

	res, err := conn.Exec(`INSERT INTO lists (title, user_id, created) VALUES (?, ?, ?)`, title, userID, created.UTC())
	if err != nil {
		t.Fatalf("Failed to create test list: %v", err)
	}
	listID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test list id: %v", err)
	}

	for _, name := range tasks {
		if _, err := conn.Exec(`INSERT INTO tasks (name, list_id) VALUES (?, ?)`, name, listID); err != nil {
			t.Fatalf("Failed to create test task: %v", err)
		}
	}

	return listID
}

// CountRows returns the number of rows in table matching where
func CountRows(t *testing.T, conn *sqlx.DB, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := conn.Get(&n, query, args...); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeFormRequest creates a form-encoded test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks the status code and Location header
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, status int, location string) {
	t.Helper()
	AssertStatus(t, w, status)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// ResponseCookie returns the last cookie with this name set on the
// response, which is the one a browser keeps, or nil
func ResponseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}
	return found
}
