package postgresql

import (
	"context"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/auth"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/database"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

// GetByUsername implements auth.AdminRepository.
func (a *adminRepositoryImpl) GetByUsername(ctx context.Context, username string) (auth.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, username, password_hash, name, created_at, updated_at
		FROM admins
		WHERE username = $1
	`

	var admin auth.Admin
	err := q.QueryRow(ctx, query, username).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &admin.Name,
		&admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		return auth.Admin{}, err
	}

	return admin, nil
}
