// Package account manages user accounts: registration, login, profile
// updates and removal, keyed by unique username.
package account

import "errors"

// Account errors - sentinel errors callers may check with errors.Is().
var (
	// ErrUsernameTaken is returned when registering a username that exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when no account has the given username.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when a login does not match.
	// It does not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrEmptyPassword is returned when a password is required but empty.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
