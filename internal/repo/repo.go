// Package repo declares the storage contracts shared by the Postgres and
// SQLite backends.
package repo

import (
	"context"
	"time"

	"github.com/pulkitchauhan42/TGP/internal/domain"
)

// QueryTimeout bounds every single store call.
const QueryTimeout = 3 * time.Second

type UserRepository interface {
	// Create returns domain.ErrUserExists when the email is taken.
	Create(ctx context.Context, u *domain.User) error
	// FindByEmail returns nil, nil when no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	ListByDateLocation(ctx context.Context, date, location string) ([]domain.Booking, error)
	// Delete removes every row matching the key exactly and reports how many went.
	Delete(ctx context.Context, key domain.SlotKey) (int64, error)
}
