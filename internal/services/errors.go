package services

import "errors"

// Service-level failures. Handlers translate these to HTTP statuses; raw
// store errors never cross that boundary.
var (
	// ErrNotFound is wrapped with a message naming the entity and id.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound and ErrInvalidCredentials are distinct so the service
	// can log which one occurred, but the HTTP layer must present them
	// identically to avoid revealing whether an account exists.
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
