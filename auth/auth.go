// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/five25/models"
	"github.com/danielhkuo/five25/store"
)

// bcrypt ignores input past 72 bytes; longer passwords are rejected
const maxPasswordBytes = 72

// hashCost is lowered in tests
var hashCost = bcrypt.DefaultCost

// ValidationError is a registration failure shown to the user as-is
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError is a login failure shown to the user as-is
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Accounts is the subset of the store used for registration and login
type Accounts interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// HashPassword returns a salted bcrypt hash of the password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register validates the form and creates the user.
// The first failing check is returned as a *ValidationError.
func Register(ctx context.Context, accounts Accounts, username, password, confirmation string) (int64, error) {
	switch {
	case username == "":
		return 0, &ValidationError{Message: "Username is required."}
	case password == "":
		return 0, &ValidationError{Message: "Password is required."}
	case len(password) > maxPasswordBytes:
		return 0, &ValidationError{Message: fmt.Sprintf("Password must be at most %d bytes.", maxPasswordBytes)}
	case password != confirmation:
		return 0, &ValidationError{Message: "Password and confirmation must match."}
	}

	taken, err := accounts.UsernameTaken(ctx, username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, &ValidationError{Message: fmt.Sprintf("User %s is already registered.", username)}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}

	return accounts.CreateUser(ctx, username, hash)
}

// Authenticate checks credentials and returns the matching user.
// Unknown names and wrong passwords are reported as *AuthError.
func Authenticate(ctx context.Context, accounts Accounts, username, password string) (*models.User, error) {
	user, err := accounts.UserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &AuthError{Message: "Incorrect username."}
	}
	if err != nil {
		return nil, err
	}

	if !CheckPassword(user.Password, password) {
		return nil, &AuthError{Message: "Incorrect password."}
	}

	return user, nil
}
