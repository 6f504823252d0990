package models

import "time"

// User represents a user account in the system.
//
// PasswordHash is serialized under "password" because the create endpoint
// returns the stored row verbatim; every other code path blanks it before
// encoding.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserUpdate is a partial update of a user. Nil fields keep their stored
// value.
type UserUpdate struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Email *string `json:"email"`
}
