package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/repo"
)

type BookingRepo struct{ pool *pgxpool.Pool }

var _ repo.BookingRepository = (*BookingRepo)(nil)

func NewBookingRepo(pool *pgxpool.Pool) *BookingRepo { return &BookingRepo{pool: pool} }

const bookingCols = `id, email, date, time, duration, location, created_at`

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	const q = `
INSERT INTO bookings (email, date, time, duration, location)
VALUES ($1,$2,$3,$4,$5)
RETURNING id, created_at`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	return r.pool.QueryRow(ctx, q, b.Email, b.Date, b.Time, b.Duration, b.Location).
		Scan(&b.ID, &b.CreatedAt)
}

func (r *BookingRepo) ListByDateLocation(ctx context.Context, date, location string) ([]domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE date=$1 AND location=$2 ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, date, location)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Booking, error) {
		var b domain.Booking
		err := row.Scan(&b.ID, &b.Email, &b.Date, &b.Time, &b.Duration, &b.Location, &b.CreatedAt)
		return b, err
	})
}

func (r *BookingRepo) Delete(ctx context.Context, key domain.SlotKey) (int64, error) {
	const q = `DELETE FROM bookings WHERE email=$1 AND location=$2 AND date=$3 AND time=$4`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, q, key.Email, key.Location, key.Date, key.Time)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
