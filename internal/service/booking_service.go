package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/repo"
	"github.com/pulkitchauhan42/TGP/pkg/events"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

type BookingService interface {
	ListBooked(ctx context.Context, date, location string) ([]domain.Booking, error)
	AvailableSlots(ctx context.Context, date, location string) ([]string, error)
	Book(ctx context.Context, email string, req *domain.BookingRequest) (*domain.Booking, error)
	// Cancel succeeds whether or not a row matched and reports how many went.
	Cancel(ctx context.Context, key domain.SlotKey) (int64, error)
}

type BookingOptions struct {
	DefaultLocation string
	Location        *time.Location
	Now             func() time.Time
}

type bookingService struct {
	bookings repo.BookingRepository
	bus      events.Publisher
	opts     BookingOptions
}

func NewBookingService(bookings repo.BookingRepository, bus events.Publisher, opts BookingOptions) BookingService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &bookingService{bookings: bookings, bus: bus, opts: opts}
}

func (s *bookingService) location(loc string) string {
	if strings.TrimSpace(loc) == "" {
		return s.opts.DefaultLocation
	}
	return loc
}

func (s *bookingService) ListBooked(ctx context.Context, date, location string) ([]domain.Booking, error) {
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	list, err := s.bookings.ListByDateLocation(ctx, date, s.location(location))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if list == nil {
		list = []domain.Booking{}
	}
	return list, nil
}

func (s *bookingService) AvailableSlots(ctx context.Context, date, location string) ([]string, error) {
	day, err := time.ParseInLocation(dateLayout, date, s.opts.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	booked, err := s.bookings.ListByDateLocation(ctx, date, s.location(location))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	var blocks []interval
	for _, b := range booked {
		iv, err := bookingInterval(day, b)
		if err != nil {
			logger.WarnContext(ctx, "ignoring booking with unreadable time",
				"booking_id", b.ID, "time", b.Time, "error", err)
			continue
		}
		blocks = append(blocks, iv)
	}

	return freeSlots(day, blocks, s.opts.Now().In(s.opts.Location)), nil
}

func (s *bookingService) Book(ctx context.Context, email string, req *domain.BookingRequest) (*domain.Booking, error) {
	b := &domain.Booking{
		Email:    email,
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
		Location: s.location(req.Location),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.InfoContext(ctx, "booking created",
		"booking_id", b.ID, "location", b.Location, "date", b.Date, "time", b.Time)

	s.publish(ctx, events.BookingCreated, events.BookingCreatedEvent{
		BookingID: b.ID,
		Email:     b.Email,
		Date:      b.Date,
		Time:      b.Time,
		Duration:  b.Duration,
		Location:  b.Location,
		CreatedAt: b.CreatedAt,
	})
	return b, nil
}

func (s *bookingService) Cancel(ctx context.Context, key domain.SlotKey) (int64, error) {
	n, err := s.bookings.Delete(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if n == 0 {
		logger.DebugContext(ctx, "cancel matched no booking",
			"location", key.Location, "date", key.Date, "time", key.Time)
		return 0, nil
	}

	s.publish(ctx, events.BookingCanceled, events.BookingCanceledEvent{
		Email:      key.Email,
		Date:       key.Date,
		Time:       key.Time,
		Location:   key.Location,
		Removed:    n,
		CanceledAt: s.opts.Now().UTC(),
	})
	return n, nil
}

// Event delivery is best effort; the write has already succeeded.
func (s *bookingService) publish(ctx context.Context, subject string, data interface{}) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, subject, data); err != nil {
		logger.ErrorContext(ctx, "failed to publish event", "subject", subject, "error", err)
	}
}
