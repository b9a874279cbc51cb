package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"

	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

const sendTimeout = 10 * time.Second

var (
	ErrDisabled       = errors.New("mailer disabled (missing MAILERSEND_API_KEY or MAIL_FROM_EMAIL)")
	ErrEmptyRecipient = errors.New("empty recipient email")
)

// Mailer sends through the MailerSend API.
type Mailer struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

var _ Sender = (*Mailer)(nil)

// NewMailer returns a Mailer whose Send fails with ErrDisabled when the key
// or sender address is missing.
func NewMailer(apiKey, fromName, fromEmail string) *Mailer {
	m := &Mailer{from: mailersend.From{Name: fromName, Email: fromEmail}}
	if apiKey != "" && fromEmail != "" {
		m.client = mailersend.NewMailersend(apiKey)
	}
	return m
}

func (m *Mailer) Enabled() bool { return m.client != nil }

func (m *Mailer) Send(ctx context.Context, toEmail, toName, subject, text, html string) (string, error) {
	if !m.Enabled() {
		return "", ErrDisabled
	}
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return "", ErrEmptyRecipient
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	// The client turns any non-2xx answer into err and consumes the body.
	res, err := m.client.Email.Send(ctx, m.compose(toEmail, toName, subject, text, html))
	if err != nil {
		return "", fmt.Errorf("mailersend: %w", err)
	}
	defer res.Body.Close()

	id := res.Header.Get("X-Message-Id")
	logger.DebugContext(ctx, "mail accepted", "to", toEmail, "subject", subject, "message_id", id)
	return id, nil
}

func (m *Mailer) compose(toEmail, toName, subject, text, html string) *mailersend.Message {
	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)
	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}
	return msg
}
