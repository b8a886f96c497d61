package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation is returned when input validation fails.
	ErrValidation = errors.New("validation error")
	// ErrAccountNotFound is returned when a bank transaction references an
	// account that does not resolve.
	ErrAccountNotFound = errors.New("account not found")
	// ErrZeroAmount is returned when a bank transaction carries no amount.
	ErrZeroAmount = errors.New("transaction amount must be non-zero")
	// ErrInvalidToken is returned when a refresh token is unknown, expired,
	// or already rotated.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrUnauthorized is returned when credentials do not resolve to a user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyExists is returned when a unique constraint is violated.
	ErrAlreadyExists = errors.New("resource already exists")
)
