// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer for users, lists, tasks and sessions.

All queries are written with "?" placeholders and rebound by sqlx for the
active driver, so the same Store runs on sqlite, postgres and mysql.

# Lists and Tasks

	id, err := st.CreateList(ctx, userID, "Groceries", []string{"milk", "eggs"})
	err = st.ToggleFocus(ctx, id, []string{"milk"})
	err = st.CompleteTasks(ctx, id, []string{"eggs"})
	view, err := st.ViewList(ctx, id)

Tasks are addressed by (list id, name). Every task sharing a name is
affected by an update.

# Transactions

CreateList, DeleteList and the multi-name task updates each run in a
single transaction. DeleteList removes tasks before the list.

# Errors

Lookups of missing rows return an error wrapping ErrNotFound.
*/
package store
