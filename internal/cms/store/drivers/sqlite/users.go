package sqlite

import (
	"context"

	"github.com/odonlab/cms/internal/cms/domain"
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	const q = `
SELECT id, username, email, password_hash, is_active, is_admin, created_at
FROM users
WHERE username = ?`

	var u domain.User
	err := r.db.QueryRowContext(ctx, q, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.IsActive, &u.IsAdmin, &u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	const q = `
INSERT INTO users (id, username, email, password_hash, is_active, is_admin, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		u.ID, u.Username, u.Email, u.PasswordHash,
		u.IsActive, u.IsAdmin, u.CreatedAt,
	)
	return mapConstraint(err)
}
