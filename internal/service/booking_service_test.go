package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/service"
	"github.com/pulkitchauhan42/TGP/pkg/events"
)

const mainLocation = "That Golf Place - Main Location"

func newBookingService(repo *mockBookingRepo, bus *mockBus, now time.Time) service.BookingService {
	return service.NewBookingService(repo, bus, service.BookingOptions{
		DefaultLocation: mainLocation,
		Location:        time.UTC,
		Now:             func() time.Time { return now },
	})
}

var longAgo = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func TestBook_DefaultsLocationAndPublishes(t *testing.T) {
	repo := &mockBookingRepo{}
	bus := &mockBus{}
	svc := newBookingService(repo, bus, longAgo)

	b, err := svc.Book(context.Background(), "golfer@example.com", &domain.BookingRequest{
		Date: "2025-06-01", Time: "9:00 AM", Duration: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, mainLocation, b.Location)
	assert.Equal(t, "golfer@example.com", b.Email)

	list, err := svc.ListBooked(context.Background(), "2025-06-01", "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{events.BookingCreated}, bus.subjects())

	ev, ok := bus.msgs[0].data.(events.BookingCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, b.ID, ev.BookingID)
}

func TestBook_PublishFailureDoesNotFailBooking(t *testing.T) {
	svc := newBookingService(&mockBookingRepo{}, &mockBus{err: errors.New("nats down")}, longAgo)

	_, err := svc.Book(context.Background(), "a@x.com", &domain.BookingRequest{Date: "2025-06-01", Time: "9:00 AM", Duration: 1})
	assert.NoError(t, err)
}

func TestBook_SameSlotTwiceBothSucceed(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newBookingService(repo, &mockBus{}, longAgo)
	req := &domain.BookingRequest{Date: "2025-06-01", Time: "9:00 AM", Duration: 1, Location: "Main"}

	_, err := svc.Book(context.Background(), "a@x.com", req)
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), "b@x.com", req)
	require.NoError(t, err)

	list, err := svc.ListBooked(context.Background(), "2025-06-01", "Main")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListBooked_EmptyIsNotNilAndDateRequired(t *testing.T) {
	svc := newBookingService(&mockBookingRepo{}, &mockBus{}, longAgo)

	list, err := svc.ListBooked(context.Background(), "2025-06-01", "Nowhere")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = svc.ListBooked(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancel_OnlyOwnRowsAndIdempotent(t *testing.T) {
	repo := &mockBookingRepo{}
	bus := &mockBus{}
	svc := newBookingService(repo, bus, longAgo)
	req := &domain.BookingRequest{Date: "2025-06-01", Time: "9:00 AM", Duration: 1, Location: "Main"}
	_, err := svc.Book(context.Background(), "owner@x.com", req)
	require.NoError(t, err)

	n, err := svc.Cancel(context.Background(), domain.SlotKey{Email: "other@x.com", Location: "Main", Date: "2025-06-01", Time: "9:00 AM"})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = svc.Cancel(context.Background(), domain.SlotKey{Email: "owner@x.com", Location: "Main", Date: "2025-06-01", Time: "9:00 AM"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = svc.Cancel(context.Background(), domain.SlotKey{Email: "owner@x.com", Location: "Main", Date: "2025-06-01", Time: "9:00 AM"})
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, []string{events.BookingCreated, events.BookingCanceled}, bus.subjects())
}

func TestCancel_StoreError(t *testing.T) {
	svc := newBookingService(&mockBookingRepo{err: errors.New("boom")}, &mockBus{}, longAgo)
	_, err := svc.Cancel(context.Background(), domain.SlotKey{Email: "a@x.com"})
	assert.Error(t, err)
}
