package auth

import (
	"time"
)

// Admin is an administrator account. Passwords are stored as bcrypt hashes.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
