// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open selects the driver from the database type and pings the server:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - sqlite: modernc.org/sqlite (default, no cgo). Foreign keys and a
    busy timeout are enabled through DSN pragmas.
  - postgres: github.com/lib/pq
  - mysql: github.com/go-sql-driver/mysql, parseTime is always enabled.

The returned *sqlx.DB rebinds "?" placeholders for the active driver.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: id, username (unique), password (bcrypt hash)
  - lists: id, title, user_id, created
  - tasks: id, name, list_id, distraction, completed
  - sessions: opaque id, user_id, created_at, expires_at

# Relationships

	users 1──* lists 1──* tasks
	users 1──* sessions

tasks.list_id has no cascade: deleting a list removes its tasks first.
Sessions cascade with their user.
*/
package db
