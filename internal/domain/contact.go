package domain

import "context"

// ContactRequest is a single contact form submission. It lives for the
// duration of one request and is never persisted.
type ContactRequest struct {
	Name      string `json:"name" form:"name"`
	Email     string `json:"email" form:"email"`
	Subject   string `json:"subject" form:"subject"`
	Message   string `json:"message" form:"message"`
	UserAgent string `json:"userAgent,omitempty" form:"userAgent"`
}

// SubmissionResult is the outcome of a contact form submission, shaped
// for direct serialization back to the form controller.
type SubmissionResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ContactService validates submissions and dispatches the resulting emails.
type ContactService interface {
	// Submit revalidates raw input server-side and, when valid, sends the
	// owner notification and sender confirmation emails.
	Submit(ctx context.Context, raw ContactRequest) SubmissionResult

	// TestConfiguration verifies transport connectivity and sends a
	// synthetic test message to the owner. Operator diagnostic, not
	// end-user facing.
	TestConfiguration(ctx context.Context) SubmissionResult
}
