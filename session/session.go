// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/five25/models"
	"github.com/danielhkuo/five25/store"
)

const CookieName = "five25_session"

// ErrNoSession means the request carries no valid session
var ErrNoSession = errors.New("not authenticated")

// Store persists session records
type Store interface {
	CreateSession(ctx context.Context, sess models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Manager binds browser cookies to server-side session records.
// The record holds only the user id.
type Manager struct {
	store  Store
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(st Store, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  st,
		ttl:    ttl,
		secure: secure,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Start creates a fresh session for the user and sets the cookie
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, userID int64) (string, error) {
	now := m.now()
	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.CreateSession(ctx, sess); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	// No Expires/MaxAge: the cookie lasts for the browser session
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return sess.ID, nil
}

// Load resolves the principal for the request.
// Returns ErrNoSession when the cookie is missing, unknown or expired.
func (m *Manager) Load(ctx context.Context, r *http.Request) (models.Principal, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return models.Principal{}, ErrNoSession
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return models.Principal{}, ErrNoSession
	}

	sess, err := m.store.GetSession(ctx, cookie.Value)
	if errors.Is(err, store.ErrNotFound) {
		return models.Principal{}, ErrNoSession
	}
	if err != nil {
		return models.Principal{}, err
	}

	if !m.now().Before(sess.ExpiresAt) {
		if err := m.store.DeleteSession(ctx, sess.ID); err != nil {
			return models.Principal{}, err
		}
		return models.Principal{}, ErrNoSession
	}

	return models.Principal{UserID: sess.UserID, SessionID: sess.ID}, nil
}

// Revoke deletes the session record bound to the request, if any.
// The cookie is left alone; a later Start overwrites it.
func (m *Manager) Revoke(ctx context.Context, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	if err := m.store.DeleteSession(ctx, cookie.Value); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Clear revokes any session bound to the request and expires the cookie
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := m.Revoke(ctx, r); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Sweep deletes expired session records
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	return m.store.DeleteExpiredSessions(ctx, m.now())
}

type principalKey struct{}

// WithPrincipal attaches the authenticated principal to ctx
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal set by the auth guard
func PrincipalFrom(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(models.Principal)
	return p, ok
}
