package domain

import "time"

// User is an account in the directory. Accounts are created by registration
// or first-boot bootstrap and are never deleted through the API. IsAdmin is
// immutable over the wire: no endpoint updates it.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // argon2 encoded, never serialized
	IsActive     bool      `json:"is_active"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
