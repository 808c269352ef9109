// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/five25/models"
)

func insertTask(ctx context.Context, ex sqlx.ExtContext, listID int64, name string) error {
	_, err := ex.ExecContext(ctx, ex.Rebind(`
		INSERT INTO tasks (name, list_id, distraction, completed) VALUES (?, ?, ?, ?)
	`), name, listID, false, false)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// AddTask inserts a single task into the list
func (s *Store) AddTask(ctx context.Context, listID int64, name string) error {
	return insertTask(ctx, s.db, listID, name)
}

// ToggleFocus flips the distraction flag of every task with a given name.
// Names repeated in one call flip once per occurrence.
func (s *Store) ToggleFocus(ctx context.Context, listID int64, names []string) error {
	return s.eachName(ctx, `
		UPDATE tasks SET distraction = NOT distraction WHERE list_id = ? AND name = ?
	`, listID, names)
}

// CompleteTasks marks the named tasks completed. There is no way back.
func (s *Store) CompleteTasks(ctx context.Context, listID int64, names []string) error {
	return s.eachName(ctx, `
		UPDATE tasks SET completed = TRUE WHERE list_id = ? AND name = ?
	`, listID, names)
}

func (s *Store) DeleteTasks(ctx context.Context, listID int64, names []string) error {
	return s.eachName(ctx, `
		DELETE FROM tasks WHERE list_id = ? AND name = ?
	`, listID, names)
}

func (s *Store) eachName(ctx context.Context, query string, listID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}

	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		q := tx.Rebind(query)
		for _, name := range names {
			if _, err := tx.ExecContext(ctx, q, listID, name); err != nil {
				return fmt.Errorf("update task %q: %w", name, err)
			}
		}
		return nil
	})
}

// ViewList partitions the list's tasks into focus, distractions and completed
func (s *Store) ViewList(ctx context.Context, listID int64) (models.TaskView, error) {
	var tasks []models.Task
	err := s.db.SelectContext(ctx, &tasks, s.db.Rebind(`
		SELECT id, name, list_id, distraction, completed
		FROM tasks
		WHERE list_id = ?
		ORDER BY id
	`), listID)
	if err != nil {
		return models.TaskView{}, fmt.Errorf("query tasks: %w", err)
	}

	view := models.TaskView{
		Focus:        []string{},
		Distractions: []string{},
		Completed:    []string{},
	}
	for _, t := range tasks {
		switch {
		case t.Completed:
			view.Completed = append(view.Completed, t.Name)
		case t.Distraction:
			view.Distractions = append(view.Distractions, t.Name)
		default:
			view.Focus = append(view.Focus, t.Name)
		}
	}
	return view, nil
}

// CountTasks returns how many task rows reference the list
func (s *Store) CountTasks(ctx context.Context, listID int64) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, s.db.Rebind(`SELECT COUNT(*) FROM tasks WHERE list_id = ?`), listID)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}
