package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/repo"
)

const uniqueViolation = "23505"

type UsersRepo struct{ pool *pgxpool.Pool }

var _ repo.UserRepository = (*UsersRepo)(nil)

func NewUsersRepo(pool *pgxpool.Pool) *UsersRepo { return &UsersRepo{pool: pool} }

func (r *UsersRepo) Create(ctx context.Context, u *domain.User) error {
	const q = `
INSERT INTO users (email, full_name, password, is_member, member_hours)
VALUES ($1,$2,$3,$4,$5)
RETURNING created_at`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, q, u.Email, u.FullName, u.PasswordHash, u.IsMember, u.MemberHours).
		Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("insert user %s: %w", u.Email, domain.ErrUserExists)
		}
		return err
	}
	return nil
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT email, full_name, password, is_member, member_hours, created_at FROM users WHERE email=$1`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	var u domain.User
	err := r.pool.QueryRow(ctx, q, email).Scan(
		&u.Email, &u.FullName, &u.PasswordHash, &u.IsMember, &u.MemberHours, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
