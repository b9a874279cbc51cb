package service

import (
	"strings"
	"time"

	"github.com/pulkitchauhan42/TGP/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "3:04 PM"

	firstSlot = 6 * time.Hour
	lastSlot  = 22*time.Hour + 30*time.Minute
	slotStep  = 30 * time.Minute
)

type interval struct {
	start, end time.Time
}

func (iv interval) contains(t time.Time) bool {
	return !t.Before(iv.start) && t.Before(iv.end)
}

// SlotGrid lists the bookable start times of a day, "6:00 AM" through
// "10:30 PM".
func SlotGrid() []string {
	var out []string
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for off := firstSlot; off <= lastSlot; off += slotStep {
		out = append(out, base.Add(off).Format(timeLayout))
	}
	return out
}

func bookingInterval(day time.Time, b domain.Booking) (interval, error) {
	clock, err := time.Parse(timeLayout, strings.ToUpper(strings.TrimSpace(b.Time)))
	if err != nil {
		return interval{}, err
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
	dayEnd := time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location())

	switch {
	case !(b.Duration > 0):
		// Zero, negative and NaN durations block nothing.
		return interval{start: start, end: start}, nil
	case b.Duration >= 24:
		// Converting to time.Duration would overflow for huge values.
		return interval{start: start, end: dayEnd}, nil
	}
	end := start.Add(time.Duration(b.Duration * float64(time.Hour)))
	if end.After(dayEnd) {
		end = dayEnd
	}
	return interval{start: start, end: end}, nil
}

// freeSlots drops grid points covered by a booking and those not strictly
// after now.
func freeSlots(day time.Time, blocks []interval, now time.Time) []string {
	out := make([]string, 0)
	for off := firstSlot; off <= lastSlot; off += slotStep {
		at := time.Date(day.Year(), day.Month(), day.Day(),
			int(off/time.Hour), int(off%time.Hour/time.Minute), 0, 0, day.Location())
		if !at.After(now) {
			continue
		}
		taken := false
		for _, iv := range blocks {
			if iv.contains(at) {
				taken = true
				break
			}
		}
		if !taken {
			out = append(out, at.Format(timeLayout))
		}
	}
	return out
}
