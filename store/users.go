// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/five25/models"
)

// CreateUser inserts a user and returns its id.
// The password must already be hashed.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO users (username, password) VALUES (?, ?)
	`), username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	// LastInsertId is unsupported by lib/pq, so look the row up again
	user, err := s.UserByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, s.db.Rebind(`
		SELECT id, username, password FROM users WHERE username = ?
	`), username)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, s.db.Rebind(`
		SELECT id, username, password FROM users WHERE id = ?
	`), id)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

// UsernameTaken reports whether a user with this name exists
func (s *Store) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var n int
	err := s.db.GetContext(ctx, &n, s.db.Rebind(`
		SELECT COUNT(*) FROM users WHERE username = ?
	`), username)
	if err != nil {
		return false, fmt.Errorf("query username: %w", err)
	}
	return n > 0, nil
}
