package main

import (
	"context"
	"fmt"

	"github.com/pulkitchauhan42/TGP/internal/repo"
	"github.com/pulkitchauhan42/TGP/internal/repo/postgres"
	"github.com/pulkitchauhan42/TGP/internal/repo/sqlite"
	"github.com/pulkitchauhan42/TGP/pkg/config"
	"github.com/pulkitchauhan42/TGP/pkg/database"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

type store struct {
	users    repo.UserRepository
	bookings repo.BookingRepository
	closers  []func()
}

func (s *store) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStore connects to the configured database and applies migrations
// before any repository is handed out.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (*store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.URL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, db, config.DriverSQLite); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("Using SQLite store", "dsn", cfg.URL)
		return &store{
			users:    sqlite.NewUsersRepo(db),
			bookings: sqlite.NewBookingRepo(db),
			closers:  []func(){func() { _ = db.Close() }},
		}, nil

	case config.DriverPostgres:
		pool, err := database.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, database.SQLDB(pool), config.DriverPostgres); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("Connected to Postgres")
		return &store{
			users:    postgres.NewUsersRepo(pool),
			bookings: postgres.NewBookingRepo(pool),
			closers:  []func(){pool.Close},
		}, nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}
