// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/five25/models"
	"github.com/danielhkuo/five25/session"
	"github.com/danielhkuo/five25/store"
	"github.com/danielhkuo/five25/testutil"
	"github.com/danielhkuo/five25/views"
)

type testEnv struct {
	db       *sqlx.DB
	store    *store.Store
	sessions *session.Manager
	views    *views.Renderer
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	renderer, err := views.New()
	if err != nil {
		t.Fatalf("Failed to load templates: %v", err)
	}

	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	return &testEnv{
		db:       conn,
		store:    st,
		sessions: session.NewManager(st, cfg.SessionTTL, cfg.SecureCookies),
		views:    renderer,
	}
}

// asUser attaches a principal the way RequireLogin does
func asUser(req *http.Request, userID int64) *http.Request {
	ctx := session.WithPrincipal(req.Context(), models.Principal{UserID: userID})
	return req.WithContext(ctx)
}
