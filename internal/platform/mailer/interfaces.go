package mailer

import "context"

// Sender delivers one message and returns the provider's message id, if any.
type Sender interface {
	Send(ctx context.Context, toEmail, toName, subject, text, html string) (string, error)
}

// BookingNotice is the slot a golfer booked or canceled.
type BookingNotice struct {
	Email    string
	Date     string
	Time     string
	Duration float64
	Location string
}

type Service interface {
	SendBookingConfirmation(ctx context.Context, n BookingNotice) error
	SendBookingCancellation(ctx context.Context, n BookingNotice) error
}
