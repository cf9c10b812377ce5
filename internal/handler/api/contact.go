// Package api contains the JSON endpoints backing the contact form.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vikrantwiz02/portfolio/internal/domain"
	"github.com/vikrantwiz02/portfolio/internal/handler"
	"github.com/vikrantwiz02/portfolio/internal/middleware"
)

// ContactHandler accepts contact form submissions on POST /api/contact.
type ContactHandler struct {
	service domain.ContactService
}

func NewContactHandler(service domain.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		handler.MethodNotAllowedResponse(w, r, http.MethodPost)
		return
	}

	req, err := decodeContactRequest(r)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "api.contact",
			"Invalid request body"))
		return
	}

	result := h.service.Submit(r.Context(), req)

	status := http.StatusOK
	if !result.Success {
		if len(result.Errors) > 0 {
			status = http.StatusBadRequest
		} else {
			status = http.StatusInternalServerError
		}
	}

	logger := middleware.GetLogger(r.Context())
	logger.Info("contact submission handled",
		"success", result.Success,
		"status", status,
	)

	handler.JSON(w, status, result)
}

// decodeContactRequest reads a submission from either a JSON body or a
// classic form post. The User-Agent header fills the userAgent field
// when the body does not carry one.
func decodeContactRequest(r *http.Request) (domain.ContactRequest, error) {
	var req domain.ContactRequest

	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			return req, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Name = r.PostFormValue("name")
		req.Email = r.PostFormValue("email")
		req.Subject = r.PostFormValue("subject")
		req.Message = r.PostFormValue("message")
		req.UserAgent = r.PostFormValue("userAgent")
	}

	if req.UserAgent == "" {
		req.UserAgent = r.Header.Get("User-Agent")
	}

	return req, nil
}

// ContactTestHandler exposes the email configuration check on
// POST /api/contact/test. The route is gated behind the admin token
// middleware; this handler only runs for authorized callers.
type ContactTestHandler struct {
	service domain.ContactService
}

func NewContactTestHandler(service domain.ContactService) *ContactTestHandler {
	return &ContactTestHandler{service: service}
}

func (h *ContactTestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		handler.MethodNotAllowedResponse(w, r, http.MethodPost)
		return
	}

	result := h.service.TestConfiguration(r.Context())

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}

	handler.JSON(w, status, result)
}
