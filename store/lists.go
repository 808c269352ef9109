// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/five25/models"
)

// ListsByUser returns the user's lists, most recently created first
func (s *Store) ListsByUser(ctx context.Context, userID int64) ([]models.List, error) {
	lists := []models.List{}
	err := s.db.SelectContext(ctx, &lists, s.db.Rebind(`
		SELECT id, title, user_id, created
		FROM lists
		WHERE user_id = ?
		ORDER BY created DESC, id DESC
	`), userID)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	return lists, nil
}

// MostRecentList returns the user's newest list or ErrNotFound
func (s *Store) MostRecentList(ctx context.Context, userID int64) (*models.List, error) {
	var list models.List
	err := s.db.GetContext(ctx, &list, s.db.Rebind(`
		SELECT id, title, user_id, created
		FROM lists
		WHERE user_id = ?
		ORDER BY created DESC, id DESC
		LIMIT 1
	`), userID)
	if err != nil {
		return nil, notFound(err, "list")
	}
	return &list, nil
}

func (s *Store) GetList(ctx context.Context, listID int64) (*models.List, error) {
	var list models.List
	err := s.db.GetContext(ctx, &list, s.db.Rebind(`
		SELECT id, title, user_id, created FROM lists WHERE id = ?
	`), listID)
	if err != nil {
		return nil, notFound(err, "list")
	}
	return &list, nil
}

// CreateList inserts a list and one task per name, in one transaction.
// The new id is resolved as the newest list with this title and owner,
// so duplicate titles resolve to the one just inserted.
func (s *Store) CreateList(ctx context.Context, userID int64, title string, taskNames []string) (int64, error) {
	var listID int64

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO lists (title, user_id, created) VALUES (?, ?, ?)
		`), title, userID, s.now())
		if err != nil {
			return fmt.Errorf("insert list: %w", err)
		}

		err = tx.GetContext(ctx, &listID, tx.Rebind(`
			SELECT id FROM lists
			WHERE title = ? AND user_id = ?
			ORDER BY created DESC, id DESC
			LIMIT 1
		`), title, userID)
		if err != nil {
			return notFound(err, "new list")
		}

		for _, name := range taskNames {
			if err := insertTask(ctx, tx, listID, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return listID, nil
}

// DeleteList removes the list's tasks, then the list itself
func (s *Store) DeleteList(ctx context.Context, listID int64) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM tasks WHERE list_id = ?`), listID); err != nil {
			return fmt.Errorf("delete tasks: %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM lists WHERE id = ?`), listID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
}
