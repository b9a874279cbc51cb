// Package sqlite stores users and bookings in a SQLite database, the same
// engine the production edge deployment runs on.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/repo"
)

type UsersRepo struct{ db *sql.DB }

var _ repo.UserRepository = (*UsersRepo)(nil)

func NewUsersRepo(db *sql.DB) *UsersRepo { return &UsersRepo{db: db} }

func (r *UsersRepo) Create(ctx context.Context, u *domain.User) error {
	const q = `
INSERT INTO users (email, full_name, password, is_member, member_hours, created_at)
VALUES (?,?,?,?,?,?)`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	createdAt := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, q, u.Email, u.FullName, u.PasswordHash, u.IsMember, u.MemberHours, createdAt)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("insert user %s: %w", u.Email, domain.ErrUserExists)
		}
		return err
	}
	u.CreatedAt = createdAt
	return nil
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT email, full_name, password, is_member, member_hours, created_at FROM users WHERE email=?`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	var u domain.User
	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&u.Email, &u.FullName, &u.PasswordHash, &u.IsMember, &u.MemberHours, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func isConstraintViolation(err error) bool {
	var sqlErr sqlite3.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	return sqlErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqlErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
