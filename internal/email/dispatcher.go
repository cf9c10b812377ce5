package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vikrantwiz02/portfolio/internal/domain"
)

// strictPolicy strips every tag from user-supplied text before it is
// embedded in an HTML email body.
var strictPolicy = bluemonday.StrictPolicy()

// DispatcherConfig holds the static sender/recipient identity used to
// compose contact emails.
type DispatcherConfig struct {
	From      string // sender address for both messages
	FromName  string // sender display name, also the confirmation signature
	Recipient string // site owner address receiving notifications
}

// Dispatcher composes and sends the two contact-form emails: the owner
// notification first, then the confirmation to the submitter. A failure
// on the first message prevents sending the second, and any failure
// fails the submission as a whole.
type Dispatcher struct {
	sender Sender
	config DispatcherConfig
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher on top of the given sender.
func NewDispatcher(sender Sender, config DispatcherConfig, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sender: sender,
		config: config,
		logger: logger,
	}
}

// Verify checks transport connectivity without sending anything.
func (d *Dispatcher) Verify(ctx context.Context) error {
	return d.sender.Verify(ctx)
}

// SendContactEmails sends the owner notification and the submitter
// confirmation for an already-validated contact request, in that order.
func (d *Dispatcher) SendContactEmails(ctx context.Context, req domain.ContactRequest) error {
	owner := d.ownerNotification(req, time.Now())
	if _, err := d.sender.Send(ctx, owner); err != nil {
		return err
	}

	confirmation := d.confirmation(req)
	if _, err := d.sender.Send(ctx, confirmation); err != nil {
		return err
	}

	d.logger.Info("contact emails sent",
		"owner_to", d.config.Recipient,
		"confirmation_to", req.Email,
		"subject", req.Subject,
	)
	return nil
}

// SendTest sends a synthetic message to the owner to prove the
// configured transport can deliver.
func (d *Dispatcher) SendTest(ctx context.Context) error {
	msg := &Message{
		From:     fmt.Sprintf("%q <%s>", "Test Email", d.config.From),
		To:       []string{d.config.Recipient},
		Subject:  "Email Configuration Test",
		TextBody: "This is a test email to verify your email configuration is working correctly.",
	}
	_, err := d.sender.Send(ctx, msg)
	return err
}

// ownerNotification composes the message sent to the site owner.
func (d *Dispatcher) ownerNotification(req domain.ContactRequest, receivedAt time.Time) *Message {
	name := sanitize(req.Name)
	subject := sanitize(req.Subject)
	message := htmlBreaks(sanitize(req.Message))

	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> <a href=\"mailto:%s\">%s</a></p>\n", req.Email, req.Email)
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>\n", subject)
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", message)
	b.WriteString("<hr>\n")
	if req.UserAgent != "" {
		fmt.Fprintf(&b, "<p><small>User Agent: %s</small></p>\n", sanitize(req.UserAgent))
	}
	fmt.Fprintf(&b, "<p><small>Received at: %s</small></p>\n", receivedAt.Format(time.RFC1123))

	html := b.String()
	return &Message{
		From:     fmt.Sprintf("%q <%s>", d.config.FromName, d.config.From),
		To:       []string{d.config.Recipient},
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("New Contact: %s", req.Subject),
		HTMLBody: html,
		TextBody: generatePlainText(html),
	}
}

// confirmation composes the message sent back to the submitter.
func (d *Dispatcher) confirmation(req domain.ContactRequest) *Message {
	name := sanitize(req.Name)
	subject := sanitize(req.Subject)
	message := htmlBreaks(sanitize(req.Message))

	var b strings.Builder
	b.WriteString("<h2>Thank you for contacting me!</h2>\n")
	fmt.Fprintf(&b, "<p>Dear %s,</p>\n", name)
	b.WriteString("<p>I've received your message and will get back to you as soon as possible.</p>\n")
	b.WriteString("<hr>\n")
	b.WriteString("<h3>Your Message:</h3>\n")
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>\n", subject)
	fmt.Fprintf(&b, "<p>%s</p>\n", message)
	b.WriteString("<hr>\n")
	b.WriteString("<p>Best regards,</p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", d.config.FromName)

	html := b.String()
	return &Message{
		From:     fmt.Sprintf("%q <%s>", d.config.FromName, d.config.From),
		To:       []string{req.Email},
		Subject:  fmt.Sprintf("Confirmation: %s", req.Subject),
		HTMLBody: html,
		TextBody: generatePlainText(html),
	}
}

// sanitize strips any markup from user-supplied text.
func sanitize(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// htmlBreaks preserves user line breaks in HTML output.
func htmlBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
