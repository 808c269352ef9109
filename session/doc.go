// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session keeps the authenticated user id in server-side state.

A browser holds only an opaque random id (a UUID) in the five25_session
cookie. The matching record in the sessions table stores the user id
and an expiry.

	m := session.NewManager(st, 24*time.Hour, cfg.SecureCookies)
	_, err := m.Start(ctx, w, userID)    // login / register
	p, err := m.Load(ctx, r)             // ErrNoSession if absent or expired
	err = m.Revoke(ctx, r)               // drop the record, keep the cookie
	err = m.Clear(ctx, w, r)             // login page / logout

Start always issues a new id. Expired records are removed on access and
by Sweep.

# Request Principal

The auth guard stores the resolved principal in the request context:

	ctx = session.WithPrincipal(ctx, p)
	p, ok := session.PrincipalFrom(r.Context())

# Flash Messages

SetFlash stores a message in a short-lived cookie before a redirect;
PopFlash reads and clears it when the next page renders.
*/
package session
