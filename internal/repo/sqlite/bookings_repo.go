package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/repo"
)

type BookingRepo struct{ db *sql.DB }

var _ repo.BookingRepository = (*BookingRepo)(nil)

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	const q = `
INSERT INTO bookings (email, date, time, duration, location, created_at)
VALUES (?,?,?,?,?,?)`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	createdAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, q, b.Email, b.Date, b.Time, b.Duration, b.Location, createdAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	b.CreatedAt = createdAt
	return nil
}

func (r *BookingRepo) ListByDateLocation(ctx context.Context, date, location string) ([]domain.Booking, error) {
	const q = `SELECT id, email, date, time, duration, location, created_at
FROM bookings WHERE date=? AND location=? ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, q, date, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Email, &b.Date, &b.Time, &b.Duration, &b.Location, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BookingRepo) Delete(ctx context.Context, key domain.SlotKey) (int64, error) {
	const q = `DELETE FROM bookings WHERE email=? AND location=? AND date=? AND time=?`
	ctx, cancel := context.WithTimeout(ctx, repo.QueryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, q, key.Email, key.Location, key.Date, key.Time)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
