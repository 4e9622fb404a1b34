package models

import (
	"time"
)

// Account roles. Signup assigns RoleAdmin; the admin surface only admits
// sessions holding it.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Account represents an administrative account. The password hash never
// leaves the server.
type Account struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
