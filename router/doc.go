// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method and
pattern routing.

	mux, sessions, err := router.NewRouter(conn, cfg)

Public routes:

	GET  /health          JSON health check (database ping)
	GET  /register        POST /register
	GET  /login           POST /login
	GET  /logout
	GET  /about

Routes behind the auth guard (redirect to /login without a session):

	GET  /                          GET  /tasks/{list_id}
	GET  /create                    POST /create
	GET  /add/{list_id}             POST /add/{list_id}
	POST /focus/{list_id}           POST /complete/{list_id}
	POST /delete_task/{list_id}     POST /delete_list/{list_id}

Every other path renders the 404 page. All routes except /health are
wrapped with request logging.
*/
package router
