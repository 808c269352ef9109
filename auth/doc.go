// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and the account operations.

# Passwords

Passwords are hashed with bcrypt and never stored or compared in
plaintext:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

Passwords longer than 72 bytes are rejected at registration since bcrypt
would silently ignore the tail.

# Registration

	userID, err := auth.Register(ctx, st, username, password, confirmation)

Checks run in order and the first failure wins: empty username, empty
password, password length, confirmation mismatch, username taken. Each
is returned as a *ValidationError whose message is shown on the form.

# Login

	user, err := auth.Authenticate(ctx, st, username, password)

An unknown username or a wrong password yields an *AuthError. Any other
error comes from the store and should be treated as a server failure.
*/
package auth
