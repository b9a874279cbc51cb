package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/service"
)

func TestSlotGrid(t *testing.T) {
	grid := service.SlotGrid()
	require.Len(t, grid, 34)
	assert.Equal(t, "6:00 AM", grid[0])
	assert.Equal(t, "12:00 PM", grid[12])
	assert.Equal(t, "10:30 PM", grid[len(grid)-1])
}

func TestAvailableSlots_BlocksBookedIntervals(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.bookings = []domain.Booking{
		{ID: 1, Date: "2025-06-01", Time: "9:00 AM", Duration: 1.5, Location: mainLocation},
		{ID: 2, Date: "2025-06-01", Time: "1:15 pm", Duration: 0.5, Location: mainLocation},
		{ID: 3, Date: "2025-06-01", Time: "whenever", Duration: 3, Location: mainLocation},
		{ID: 4, Date: "2025-06-01", Time: "6:00 AM", Duration: 8, Location: "Elsewhere"},
	}
	svc := newBookingService(repo, &mockBus{}, longAgo)

	slots, err := svc.AvailableSlots(context.Background(), "2025-06-01", "")
	require.NoError(t, err)

	assert.NotContains(t, slots, "9:00 AM")
	assert.NotContains(t, slots, "9:30 AM")
	assert.NotContains(t, slots, "10:00 AM")
	assert.Contains(t, slots, "10:30 AM")
	assert.NotContains(t, slots, "1:30 PM")
	assert.Contains(t, slots, "1:00 PM")
	assert.Contains(t, slots, "2:00 PM")
	assert.Contains(t, slots, "6:00 AM", "other locations do not block")
	assert.Len(t, slots, 34-4)
}

func TestAvailableSlots_DropsPastSlots(t *testing.T) {
	now := time.Date(2025, 6, 1, 21, 30, 0, 0, time.UTC)
	svc := newBookingService(&mockBookingRepo{}, &mockBus{}, now)

	slots, err := svc.AvailableSlots(context.Background(), "2025-06-01", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00 PM", "10:30 PM"}, slots)

	slots, err = svc.AvailableSlots(context.Background(), "2025-05-31", "")
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlots_BadDate(t *testing.T) {
	svc := newBookingService(&mockBookingRepo{}, &mockBus{}, longAgo)
	_, err := svc.AvailableSlots(context.Background(), "06/01/2025", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAvailableSlots_OutOfRangeDurations(t *testing.T) {
	tests := []struct {
		name     string
		booking  domain.Booking
		wantLen  int
		wantFree []string
		wantBusy []string
	}{
		{
			name:     "huge duration blocks the rest of the day",
			booking:  domain.Booking{Time: "6:00 AM", Duration: 1e9},
			wantLen:  0,
			wantBusy: []string{"6:00 AM", "10:30 PM"},
		},
		{
			name:     "duration past midnight is clamped",
			booking:  domain.Booking{Time: "9:00 PM", Duration: 30},
			wantLen:  30,
			wantFree: []string{"8:30 PM"},
			wantBusy: []string{"9:00 PM", "10:30 PM"},
		},
		{
			name:     "zero duration blocks nothing",
			booking:  domain.Booking{Time: "9:00 AM", Duration: 0},
			wantLen:  34,
			wantFree: []string{"9:00 AM"},
		},
		{
			name:     "negative duration blocks nothing",
			booking:  domain.Booking{Time: "9:00 AM", Duration: -3},
			wantLen:  34,
			wantFree: []string{"9:00 AM", "8:00 AM"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.booking
			b.ID, b.Date, b.Location = 1, "2025-06-01", mainLocation
			svc := newBookingService(&mockBookingRepo{bookings: []domain.Booking{b}}, &mockBus{}, longAgo)

			slots, err := svc.AvailableSlots(context.Background(), "2025-06-01", "")
			require.NoError(t, err)
			assert.Len(t, slots, tt.wantLen)
			for _, s := range tt.wantFree {
				assert.Contains(t, slots, s)
			}
			for _, s := range tt.wantBusy {
				assert.NotContains(t, slots, s)
			}
		})
	}
}
