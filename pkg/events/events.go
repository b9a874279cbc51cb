package events

import (
	"context"
	"encoding/json"
	"time"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type Subscriber interface {
	Subscribe(subject string, handler func(msg *Message)) error
	QueueSubscribe(subject, queue string, handler func(msg *Message)) error
	Close() error
}

type EventBus interface {
	Publisher
	Subscriber
}

type Message struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	ID        string
}

// Decode unmarshals the message payload into v.
func (m *Message) Decode(v interface{}) error {
	return json.Unmarshal(m.Data, v)
}

const (
	BookingCreated  = "booking.created"
	BookingCanceled = "booking.canceled"

	PaymentCheckoutCreated = "payment.checkout.created"
	PaymentCompleted       = "payment.completed"
)

type BookingCreatedEvent struct {
	BookingID int64     `json:"booking_id"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Duration  float64   `json:"duration"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingCanceledEvent struct {
	Email      string    `json:"email"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Location   string    `json:"location"`
	Removed    int64     `json:"removed"`
	CanceledAt time.Time `json:"canceled_at"`
}

type CheckoutCreatedEvent struct {
	Email    string  `json:"email"`
	Amount   int64   `json:"amount"`
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Duration float64 `json:"duration"`
	Location string  `json:"location"`
}

type PaymentCompletedEvent struct {
	SessionID   string            `json:"session_id"`
	AmountTotal int64             `json:"amount_total"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata"`
}
