package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/vikrantwiz02/portfolio/internal/domain"
)

// sendTimeout bounds a single send. Exceeding it is a delivery failure,
// not a distinct error class.
const sendTimeout = 10 * time.Second

// SMTPConfig holds SMTP connection parameters.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string // optional - some servers allow unauthenticated relay
	Password string // optional
}

// SMTPSender implements Sender using go-mail for robust SMTP support.
// Features:
// - TLS mode selected from the port (SMTPS, STARTTLS, opportunistic)
// - Auth method autodiscovery when credentials are present
// - Proper MIME multipart message construction
// - Bounded send timeout
type SMTPSender struct {
	config *SMTPConfig
	logger *slog.Logger
}

// NewSMTPSender creates a new SMTP email sender using go-mail.
func NewSMTPSender(config *SMTPConfig, logger *slog.Logger) *SMTPSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMTPSender{
		config: config,
		logger: logger,
	}
}

// Send sends an email via SMTP using go-mail.
func (s *SMTPSender) Send(ctx context.Context, m *Message) (string, error) {
	s.logger.Info("smtp: preparing email",
		"to", m.To,
		"from", m.From,
		"subject", m.Subject,
		"host", s.config.Host,
		"port", s.config.Port,
	)

	msg := mail.NewMsg()

	if err := msg.From(m.From); err != nil {
		return "", domain.ConfigurationError("email.send", fmt.Errorf("invalid from address: %w", err))
	}

	if err := msg.To(m.To...); err != nil {
		return "", domain.DeliveryError("email.send", fmt.Errorf("invalid to address: %w", err))
	}

	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return "", domain.DeliveryError("email.send", fmt.Errorf("invalid reply-to address: %w", err))
		}
	}

	msg.Subject(m.Subject)

	// Prefer HTML with text fallback, or just text
	if m.HTMLBody != "" && m.TextBody != "" {
		msg.SetBodyString(mail.TypeTextPlain, m.TextBody)
		msg.AddAlternativeString(mail.TypeTextHTML, m.HTMLBody)
	} else if m.HTMLBody != "" {
		msg.SetBodyString(mail.TypeTextHTML, m.HTMLBody)
	} else {
		msg.SetBodyString(mail.TypeTextPlain, m.TextBody)
	}

	client, err := mail.NewClient(s.config.Host, s.buildClientOptions()...)
	if err != nil {
		return "", domain.ConfigurationError("email.send", fmt.Errorf("failed to create SMTP client: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.Error("smtp: failed to send email", "error", err)
		return "", domain.DeliveryError("email.send", err)
	}

	s.logger.Info("smtp: email sent successfully", "to", m.To)

	// Generate a message ID (SMTP doesn't provide one reliably)
	messageID := fmt.Sprintf("smtp-%d-%d", time.Now().UnixNano(), len(m.To))
	return messageID, nil
}

// Verify checks SMTP connectivity and authentication without sending email.
func (s *SMTPSender) Verify(ctx context.Context) error {
	client, err := mail.NewClient(s.config.Host, s.buildClientOptions()...)
	if err != nil {
		return domain.ConfigurationError("email.verify", fmt.Errorf("failed to create SMTP client: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := client.DialWithContext(ctx); err != nil {
		return domain.ConfigurationError("email.verify", fmt.Errorf("connection failed: %w", err))
	}
	defer client.Close()

	return nil
}

// buildClientOptions returns go-mail client options based on configuration.
func (s *SMTPSender) buildClientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithTimeout(sendTimeout),
	}

	// TLS mode based on port (go-mail auto-detects, but we can be explicit)
	switch s.config.Port {
	case 465:
		// Implicit TLS (SMTPS)
		opts = append(opts, mail.WithSSL())
	case 587:
		// STARTTLS (submission port)
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	case 25:
		// Plain SMTP or opportunistic STARTTLS
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	default:
		// For other ports (like 1025 for Mailhog), try opportunistic TLS
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	// Authentication if credentials provided
	if s.config.Username != "" && s.config.Password != "" {
		opts = append(opts,
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
			mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover),
		)
	}

	return opts
}
