package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// UserRepo provides access to the users (staff accounts) table.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// GetActiveByEmail returns the active account with the given email, or
// ErrUserNotFound.  Inactive accounts are invisible to login.
func (r *UserRepo) GetActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT id, email, password_hash, role, is_active, created_at, updated_at
	           FROM users WHERE email = ? AND is_active = 1`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert inserts an account by unique email or rotates its password hash and
// role.  Used by the seeder to provision the admin login.
func (r *UserRepo) Upsert(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (email, password_hash, role, is_active)
	           VALUES (?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	             password_hash = VALUES(password_hash), role = VALUES(role),
	             is_active = VALUES(is_active)`
	_, err := r.db.ExecContext(ctx, q, u.Email, u.PasswordHash, u.Role, u.IsActive)
	return err
}
