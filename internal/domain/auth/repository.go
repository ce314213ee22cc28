package auth

import (
	"context"
)

// AdminRepository defines data access methods for administrator accounts.
type AdminRepository interface {
	// GetByUsername retrieves an admin account by username
	GetByUsername(ctx context.Context, username string) (Admin, error)
}
