// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Flash messages shown after a redirect
const (
	FlashListCreated = "Your list has been created. Now choose the tasks to prioritize."
)

// Domain types

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"` // bcrypt hash, never plaintext
}

type List struct {
	ID      int64     `db:"id"`
	Title   string    `db:"title"`
	UserID  int64     `db:"user_id"`
	Created time.Time `db:"created"`
}

type Task struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	ListID      int64  `db:"list_id"`
	Distraction bool   `db:"distraction"`
	Completed   bool   `db:"completed"`
}

// TaskView partitions a list's tasks for display.
// Completed wins over the distraction flag.
type TaskView struct {
	Focus        []string
	Distractions []string
	Completed    []string
}

type Session struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// Principal is the authenticated identity attached to a request
type Principal struct {
	UserID    int64
	SessionID string
}

// Page data

type Page struct {
	Title     string
	Flash     string
	Principal *Principal
}

type IndexPage struct {
	Page
	Username string
	Lists    []List
}

type TasksPage struct {
	Page
	List List
	View TaskView
}

type AddPage struct {
	Page
	List  List
	Error string
}

type ErrorPage struct {
	Page
	Message string
}

type FormPage struct {
	Page
	Username string
	Error    string
}
