// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the five25 web server.

five25 is a multi-user task-list manager. Users register, write down a
list of tasks, mark the few that matter as focus and the rest as
distractions, then complete or delete them. Pages are rendered on the
server; state lives in a relational database.

# Starting the Server

The server requires a database URL from the environment or flags:

	DATABASE_URL=five25.db go run .

Or with flags:

	go run . serve -p 5000 -t postgres -d "postgres://..."

Create the schema without serving:

	go run . migrate -t mysql -d "user:pass@tcp(localhost:3306)/five25"

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string or sqlite file path

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite, postgres or mysql (default: sqlite)
  - SESSION_TTL (--session-ttl): server-side session lifetime (default: 24h)
  - SECURE_COOKIES (--secure-cookies): set when serving over HTTPS

Values may also come from a .env file (--env-file).

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, lists, tasks, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging, auth guard, JSON helper
  - session: Server-side sessions and flash messages
  - auth: Password hashing, registration and login checks
  - store: SQL for users, lists, tasks and sessions
  - views: Embedded HTML templates
  - models: Domain and page types
  - db: Connections and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
