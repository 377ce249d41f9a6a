package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers get no hint which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("no active session")
)
