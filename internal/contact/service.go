package contact

import (
	"context"
	"log/slog"

	"github.com/vikrantwiz02/portfolio/internal/domain"
)

// User-facing result messages. Transport detail never appears here.
const (
	msgInvalid = "Invalid form data. Please check your inputs."
	msgSent    = "Your message has been sent successfully! You should receive a confirmation email shortly."
	msgFailed  = "Failed to send message. Please try again later or contact me directly."

	msgTestOK     = "Email configuration is valid. Test email sent successfully."
	msgTestFailed = "Email configuration test failed."
)

// Dispatcher is the slice of the mail dispatcher the orchestrator needs.
// Tests substitute a counting fake.
type Dispatcher interface {
	Verify(ctx context.Context) error
	SendContactEmails(ctx context.Context, req domain.ContactRequest) error
	SendTest(ctx context.Context) error
}

// Service orchestrates contact form submissions: server-side
// revalidation, then dispatch. Implements domain.ContactService.
type Service struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

// NewService creates a new contact service.
func NewService(dispatcher Dispatcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Submit revalidates the raw input regardless of any client-side
// validation, then sends both contact emails. Delivery errors are logged
// with full detail and collapsed to a generic user message.
func (s *Service) Submit(ctx context.Context, raw domain.ContactRequest) domain.SubmissionResult {
	req, err := Validate(raw)
	if err != nil {
		s.logger.Info("contact submission rejected",
			"op", domain.ErrorOp(err),
			"fields", domain.GetValidationFields(err),
		)
		return domain.SubmissionResult{
			Success: false,
			Message: msgInvalid,
			Errors:  domain.GetValidationFields(err),
		}
	}

	if err := s.dispatcher.SendContactEmails(ctx, req); err != nil {
		s.logger.Error("contact email dispatch failed",
			"error", err,
			"op", domain.ErrorOp(err),
			"from", req.Email,
		)
		return domain.SubmissionResult{
			Success: false,
			Message: msgFailed,
		}
	}

	s.logger.Info("contact submission delivered", "from", req.Email, "subject", req.Subject)
	return domain.SubmissionResult{
		Success: true,
		Message: msgSent,
	}
}

// TestConfiguration verifies transport connectivity and sends a
// synthetic test message to the owner.
func (s *Service) TestConfiguration(ctx context.Context) domain.SubmissionResult {
	if err := s.dispatcher.Verify(ctx); err != nil {
		s.logger.Error("email configuration verify failed", "error", err)
		return domain.SubmissionResult{
			Success: false,
			Message: msgTestFailed,
		}
	}

	if err := s.dispatcher.SendTest(ctx); err != nil {
		s.logger.Error("test email send failed", "error", err)
		return domain.SubmissionResult{
			Success: false,
			Message: msgTestFailed,
		}
	}

	return domain.SubmissionResult{
		Success: true,
		Message: msgTestOK,
	}
}
