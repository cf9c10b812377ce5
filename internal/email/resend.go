package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/vikrantwiz02/portfolio/internal/domain"
)

// ResendSender implements Sender using the Resend HTTP API.
// An alternative to SMTP for hosts that block outbound port 25/465.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a new Resend email sender with the given API key.
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
	}
}

// Send sends an email via the Resend API.
func (r *ResendSender) Send(ctx context.Context, m *Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    m.From,
		To:      m.To,
		Subject: m.Subject,
		Html:    m.HTMLBody,
	}
	if m.TextBody != "" {
		params.Text = m.TextBody
	}
	if m.ReplyTo != "" {
		params.ReplyTo = m.ReplyTo
	}

	sent, err := r.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", domain.DeliveryError("email.send", fmt.Errorf("resend send failed: %w", err))
	}

	return sent.Id, nil
}

// Verify checks that an API key is present. Resend has no cheap
// connectivity probe, so a missing key is the only failure detected here.
func (r *ResendSender) Verify(ctx context.Context) error {
	if r.client == nil {
		return domain.ConfigurationError("email.verify", fmt.Errorf("resend client not initialized"))
	}
	return nil
}
