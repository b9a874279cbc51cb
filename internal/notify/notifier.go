// Package notify emails golfers when their bookings change.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/pulkitchauhan42/TGP/internal/platform/mailer"
	"github.com/pulkitchauhan42/TGP/pkg/events"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

const Queue = "notify"

type Notifier struct {
	mail    mailer.Service
	timeout time.Duration
}

func New(mail mailer.Service) *Notifier {
	return &Notifier{mail: mail, timeout: 15 * time.Second}
}

// Start queue-subscribes to booking events so that only one replica mails
// per event.
func (n *Notifier) Start(sub events.Subscriber) error {
	if err := sub.QueueSubscribe(events.BookingCreated, Queue, n.handle); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.BookingCreated, err)
	}
	if err := sub.QueueSubscribe(events.BookingCanceled, Queue, n.handle); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.BookingCanceled, err)
	}
	return nil
}

func (n *Notifier) handle(msg *events.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()
	ctx = context.WithValue(ctx, logger.ServiceKey, "notify")

	if err := n.dispatch(ctx, msg); err != nil {
		logger.ErrorContext(ctx, "notification dropped",
			"subject", msg.Subject, "event_id", msg.ID, "error", err)
	}
}

func (n *Notifier) dispatch(ctx context.Context, msg *events.Message) error {
	switch msg.Subject {
	case events.BookingCreated:
		var ev events.BookingCreatedEvent
		if err := msg.Decode(&ev); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		return n.mail.SendBookingConfirmation(ctx, mailer.BookingNotice{
			Email: ev.Email, Date: ev.Date, Time: ev.Time, Duration: ev.Duration, Location: ev.Location,
		})
	case events.BookingCanceled:
		var ev events.BookingCanceledEvent
		if err := msg.Decode(&ev); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		return n.mail.SendBookingCancellation(ctx, mailer.BookingNotice{
			Email: ev.Email, Date: ev.Date, Time: ev.Time, Location: ev.Location,
		})
	default:
		return fmt.Errorf("unexpected subject %q", msg.Subject)
	}
}
