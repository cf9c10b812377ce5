package email

import "context"

// Message represents an email message to be sent. Messages are composed
// per submission and discarded once handed to the transport.
type Message struct {
	To       []string // Recipient email addresses
	From     string   // Sender email address
	ReplyTo  string   // Reply-To address (optional)
	Subject  string   // Email subject
	TextBody string   // Plain text body
	HTMLBody string   // HTML body (optional)
}

// Sender defines the interface for sending emails.
// Implementations can use SMTP, Resend, or a log-only backend, and tests
// substitute an in-memory fake.
type Sender interface {
	// Verify checks transport connectivity and authentication without
	// sending anything. Used as a pre-send health check and as a
	// standalone diagnostic.
	Verify(ctx context.Context) error

	// Send sends an email message.
	// Returns the message ID from the email provider (if available).
	Send(ctx context.Context, msg *Message) (string, error)
}
