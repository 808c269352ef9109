// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for five25.

# Handler Types

Each handler is a struct with its dependencies:

  - AccountHandler: register, login, logout
  - ListHandler: home page, list page, create list, add task, delete list
  - TaskHandler: toggle focus, complete and delete named tasks
  - PageHandler: about, health, not found

Handlers are created via constructor functions:

	listHandler := handlers.NewListHandler(st, renderer)

# Authentication

Routes behind middleware.RequireLogin read the caller from the request
context:

	p, _ := session.PrincipalFrom(r.Context())

Register and login failures re-render the form with a single message
(400 and 401 respectively). Visiting GET /login signs the user out.

# Lists and Tasks

	GET  /                       → Index
	GET  /tasks/{list_id}        → Tasks (focus / distractions / completed)
	POST /create                 → Create (flash, redirect to the list)
	POST /add/{list_id}          → Add
	POST /focus/{list_id}        → Focus (flip distraction flag)
	POST /complete/{list_id}     → Complete
	POST /delete_task/{list_id}  → Delete
	POST /delete_list/{list_id}  → DeleteList

Task operations take the names from repeated "task" form fields.
Successful POSTs answer 303 See Other. List ownership is not checked.
*/
package handlers
