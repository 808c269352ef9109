// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and page types shared across packages.

# Domain Types

Rows of the relational store, tagged for sqlx scanning:

  - User: id, username, bcrypt password hash
  - List: id, title, owner, created timestamp
  - Task: id, name, list, distraction and completed flags
  - Session: server-side session record keyed by an opaque id

TaskView holds the three disjoint partitions rendered on a list page:

  - Focus: not distraction, not completed
  - Distractions: distraction, not completed
  - Completed: completed, regardless of the distraction flag

# Page Types

Template data for the server-rendered views. Every page embeds Page,
which carries the title, a one-shot flash message and the principal
(nil for anonymous requests).
*/
package models
