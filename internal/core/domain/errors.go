package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("User not found")
	ErrAccountNotFound     = errors.New("Account not found")
	ErrTransactionNotFound = errors.New("Transaction not found")

	// ErrMissingAccountID is returned before any repository lookup when a
	// transaction payload carries no account reference.
	ErrMissingAccountID = errors.New("Account ID must be provided")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("unknown role")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")

	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// NotFoundWithID wraps a NotFound sentinel so the message echoes the
// offending id ("Account not found with ID: 7") while errors.Is keeps
// matching the sentinel.
func NotFoundWithID(sentinel error, id int64) error {
	return fmt.Errorf("%w with ID: %d", sentinel, id)
}
