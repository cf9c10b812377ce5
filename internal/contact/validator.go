package contact

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vikrantwiz02/portfolio/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// contactRules mirrors the client-side schema. Rules run against trimmed
// values and all failures are collected, not just the first.
type contactRules struct {
	Name    string `validate:"required,min=2"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required,min=3"`
	Message string `validate:"required,min=10"`
}

// fieldMessages maps struct field + failing rule to the message shown
// inline next to the form field.
var fieldMessages = map[string]map[string]string{
	"Name": {
		"required": "Name is required.",
		"min":      "Name must be at least 2 characters.",
	},
	"Email": {
		"required": "Email is required.",
		"email":    "Please enter a valid email address.",
	},
	"Subject": {
		"required": "Subject is required.",
		"min":      "Subject must be at least 3 characters.",
	},
	"Message": {
		"required": "Message is required.",
		"min":      "Message must be at least 10 characters.",
	},
}

// fieldNames maps struct fields to the form field names reported to the
// client.
var fieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Subject": "subject",
	"Message": "message",
}

// Validate trims all fields of a raw submission and checks every rule
// independently. On success it returns the trimmed request with content
// otherwise untouched; on failure it returns a ValidationError with one
// message per failing field. Pure function, no side effects.
func Validate(raw domain.ContactRequest) (domain.ContactRequest, error) {
	trimmed := domain.ContactRequest{
		Name:      strings.TrimSpace(raw.Name),
		Email:     strings.TrimSpace(raw.Email),
		Subject:   strings.TrimSpace(raw.Subject),
		Message:   strings.TrimSpace(raw.Message),
		UserAgent: strings.TrimSpace(raw.UserAgent),
	}

	rules := contactRules{
		Name:    trimmed.Name,
		Email:   trimmed.Email,
		Subject: trimmed.Subject,
		Message: trimmed.Message,
	}

	err := validate.Struct(rules)
	if err == nil {
		return trimmed, nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ContactRequest{}, domain.WrapError(err, domain.EINTERNAL, "contact.validate", "validator failed")
	}

	var fieldErr error
	for _, fe := range verrs {
		field := fieldNames[fe.StructField()]
		msg := fieldMessages[fe.StructField()][fe.Tag()]
		if msg == "" {
			msg = "Invalid value."
		}
		fieldErr = domain.AddFieldError(fieldErr, field, msg)
	}

	ve := fieldErr.(*domain.ValidationError)
	ve.Op = "contact.validate"
	return domain.ContactRequest{}, ve
}
