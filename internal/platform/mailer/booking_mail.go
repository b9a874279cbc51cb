package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
)

var bookingHTML = template.Must(template.New("booking").Parse(
	`<p>{{.Intro}}</p>
<table>
<tr><td>Location</td><td>{{.Location}}</td></tr>
<tr><td>Date</td><td>{{.Date}}</td></tr>
<tr><td>Time</td><td>{{.Time}}</td></tr>
{{if .Hours}}<tr><td>Duration</td><td>{{.Hours}}</td></tr>{{end}}
</table>
<p>That Golf Place</p>`))

// BookingMailer renders booking notices and hands them to a Sender.
type BookingMailer struct {
	sender Sender
}

var _ Service = (*BookingMailer)(nil)

func NewBookingMailer(s Sender) *BookingMailer {
	return &BookingMailer{sender: s}
}

func (m *BookingMailer) SendBookingConfirmation(ctx context.Context, n BookingNotice) error {
	return m.send(ctx, n, "Your tee time is booked", "Your booking is confirmed.")
}

func (m *BookingMailer) SendBookingCancellation(ctx context.Context, n BookingNotice) error {
	return m.send(ctx, n, "Your booking was canceled", "Your booking has been canceled.")
}

func (m *BookingMailer) send(ctx context.Context, n BookingNotice, subject, intro string) error {
	hours := formatHours(n.Duration)

	text := fmt.Sprintf("%s\nLocation: %s\nDate: %s\nTime: %s\n", intro, n.Location, n.Date, n.Time)
	if hours != "" {
		text += "Duration: " + hours + "\n"
	}

	var html bytes.Buffer
	err := bookingHTML.Execute(&html, struct {
		Intro, Location, Date, Time, Hours string
	}{intro, n.Location, n.Date, n.Time, hours})
	if err != nil {
		return fmt.Errorf("render booking mail: %w", err)
	}

	if _, err := m.sender.Send(ctx, n.Email, "", subject, text, html.String()); err != nil {
		return fmt.Errorf("send %q to %s: %w", subject, n.Email, err)
	}
	return nil
}

func formatHours(h float64) string {
	switch {
	case h <= 0:
		return ""
	case h == 1:
		return "1 hour"
	default:
		return strconv.FormatFloat(h, 'f', -1, 64) + " hours"
	}
}
