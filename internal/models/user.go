package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`         // Display name
	Email        string    `json:"email" db:"email"`               // Unique email, used for login
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`                 // "user" or "admin"
	Balance      float64   `json:"balance" db:"balance"`           // Wallet balance, non-negative
	Address      string    `json:"address" db:"address"`           // Delivery address
	Contact      string    `json:"contact" db:"contact"`           // Contact number
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
