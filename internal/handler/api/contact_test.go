package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikrantwiz02/portfolio/internal/domain"
)

type stubService struct {
	submitResult domain.SubmissionResult
	testResult   domain.SubmissionResult
	lastRequest  domain.ContactRequest
	submitCalls  int
}

func (s *stubService) Submit(_ context.Context, raw domain.ContactRequest) domain.SubmissionResult {
	s.submitCalls++
	s.lastRequest = raw
	return s.submitResult
}

func (s *stubService) TestConfiguration(_ context.Context) domain.SubmissionResult {
	return s.testResult
}

func postJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) domain.SubmissionResult {
	t.Helper()
	var result domain.SubmissionResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	return result
}

func TestContactHandler_ValidSubmission(t *testing.T) {
	svc := &stubService{
		submitResult: domain.SubmissionResult{
			Success: true,
			Message: "Your message has been sent successfully! You should receive a confirmation email shortly.",
		},
	}
	h := NewContactHandler(svc)

	rec := postJSON(t, h, "/api/contact", map[string]string{
		"name":    "Asha Verma",
		"email":   "asha@example.com",
		"subject": "Project inquiry",
		"message": "I would like to discuss a project with you.",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	result := decodeResult(t, rec)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "sent successfully")
	assert.Equal(t, 1, svc.submitCalls)
	assert.Equal(t, "asha@example.com", svc.lastRequest.Email)
}

func TestContactHandler_ValidationFailure(t *testing.T) {
	svc := &stubService{
		submitResult: domain.SubmissionResult{
			Success: false,
			Message: "Invalid form data. Please check your inputs.",
			Errors: map[string]string{
				"name":  "Name must be at least 2 characters.",
				"email": "Please enter a valid email address.",
			},
		},
	}
	h := NewContactHandler(svc)

	rec := postJSON(t, h, "/api/contact", map[string]string{
		"name":  "A",
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeResult(t, rec)
	assert.False(t, result.Success)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors["name"], "at least 2 characters")
}

func TestContactHandler_DeliveryFailure(t *testing.T) {
	svc := &stubService{
		submitResult: domain.SubmissionResult{
			Success: false,
			Message: "Failed to send message. Please try again later or contact me directly.",
		},
	}
	h := NewContactHandler(svc)

	rec := postJSON(t, h, "/api/contact", map[string]string{
		"name":    "Asha Verma",
		"email":   "asha@example.com",
		"subject": "Project inquiry",
		"message": "I would like to discuss a project with you.",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	result := decodeResult(t, rec)
	assert.False(t, result.Success)
	assert.Empty(t, result.Errors)
	assert.NotContains(t, result.Message, "dial")
}

func TestContactHandler_FormEncodedBody(t *testing.T) {
	svc := &stubService{
		submitResult: domain.SubmissionResult{Success: true, Message: "sent"},
	}
	h := NewContactHandler(svc)

	form := url.Values{}
	form.Set("name", "Asha Verma")
	form.Set("email", "asha@example.com")
	form.Set("subject", "Hello")
	form.Set("message", "A form-encoded submission body.")

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "integration-test/1.0")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Asha Verma", svc.lastRequest.Name)
	assert.Equal(t, "integration-test/1.0", svc.lastRequest.UserAgent)
}

func TestContactHandler_MalformedJSON(t *testing.T) {
	svc := &stubService{}
	h := NewContactHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.submitCalls)
}

func TestContactHandler_MethodNotAllowed(t *testing.T) {
	svc := &stubService{}
	h := NewContactHandler(svc)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/contact", nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
			assert.Equal(t, 0, svc.submitCalls)
		})
	}
}

func TestContactTestHandler_Success(t *testing.T) {
	svc := &stubService{
		testResult: domain.SubmissionResult{
			Success: true,
			Message: "Email configuration is valid. Test email sent successfully.",
		},
	}
	h := NewContactTestHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/contact/test", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	result := decodeResult(t, rec)
	assert.True(t, result.Success)
}

func TestContactTestHandler_Failure(t *testing.T) {
	svc := &stubService{
		testResult: domain.SubmissionResult{
			Success: false,
			Message: "Email configuration test failed.",
		},
	}
	h := NewContactTestHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/contact/test", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	result := decodeResult(t, rec)
	assert.False(t, result.Success)
}
