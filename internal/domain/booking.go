package domain

import "time"

// Booking is one reserved slot. Date is "YYYY-MM-DD", Time is "h:mm AM" and
// Duration is in hours.
type Booking struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Duration  float64   `json:"duration"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"-"`
}

type BookingRequest struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Duration float64 `json:"duration"`
	Location string  `json:"location"`
}

// SlotKey identifies the rows removed by a cancellation.
type SlotKey struct {
	Email    string
	Location string
	Date     string
	Time     string
}

type BookedSlotsResponse struct {
	BookedSlots []Booking `json:"bookedSlots"`
}

type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
