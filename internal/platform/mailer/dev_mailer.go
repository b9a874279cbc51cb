package mailer

import (
	"context"

	"github.com/google/uuid"

	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

// DevMailer logs messages instead of sending them.
type DevMailer struct{}

var _ Sender = DevMailer{}

func NewDevMailer() DevMailer { return DevMailer{} }

func (DevMailer) Send(ctx context.Context, toEmail, toName, subject, text, _ string) (string, error) {
	id := "dev-" + uuid.NewString()
	logger.InfoContext(ctx, "[dev mail]",
		"message_id", id,
		"to", toEmail,
		"name", toName,
		"subject", subject,
		"text", text,
	)
	return id, nil
}
