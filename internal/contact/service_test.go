package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikrantwiz02/portfolio/internal/domain"
)

// countingDispatcher records calls and can be programmed to fail.
type countingDispatcher struct {
	verifyCalls int
	sendCalls   int
	testCalls   int

	verifyErr error
	sendErr   error
	testErr   error

	lastRequest domain.ContactRequest
}

func (d *countingDispatcher) Verify(ctx context.Context) error {
	d.verifyCalls++
	return d.verifyErr
}

func (d *countingDispatcher) SendContactEmails(ctx context.Context, req domain.ContactRequest) error {
	d.sendCalls++
	d.lastRequest = req
	return d.sendErr
}

func (d *countingDispatcher) SendTest(ctx context.Context) error {
	d.testCalls++
	return d.testErr
}

func validRequest() domain.ContactRequest {
	return domain.ContactRequest{
		Name:    "Jo",
		Email:   "jo@example.com",
		Subject: "Nice site",
		Message: "Hello there, nice site!",
	}
}

func TestService_Submit_Valid(t *testing.T) {
	dispatcher := &countingDispatcher{}
	svc := NewService(dispatcher, nil)

	result := svc.Submit(context.Background(), validRequest())

	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "sent successfully")
	assert.Nil(t, result.Errors)
	assert.Equal(t, 1, dispatcher.sendCalls)
}

func TestService_Submit_TrimsBeforeDispatch(t *testing.T) {
	dispatcher := &countingDispatcher{}
	svc := NewService(dispatcher, nil)

	raw := validRequest()
	raw.Name = "  Jo  "
	raw.Message = "  Hello there, nice site!  "

	result := svc.Submit(context.Background(), raw)

	require.True(t, result.Success)
	assert.Equal(t, "Jo", dispatcher.lastRequest.Name)
	assert.Equal(t, "Hello there, nice site!", dispatcher.lastRequest.Message)
}

func TestService_Submit_InvalidNeverDispatches(t *testing.T) {
	dispatcher := &countingDispatcher{}
	svc := NewService(dispatcher, nil)

	result := svc.Submit(context.Background(), domain.ContactRequest{
		Name:    "J",
		Email:   "not-an-email",
		Message: "hi",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid form data. Please check your inputs.", result.Message)
	assert.Equal(t, 0, dispatcher.sendCalls, "dispatcher must not be invoked for invalid input")

	require.NotNil(t, result.Errors)
	for _, field := range []string{"name", "email", "subject", "message"} {
		assert.NotEmpty(t, result.Errors[field], "expected error for field %q", field)
	}
}

func TestService_Submit_DeliveryFailureIsGeneric(t *testing.T) {
	dispatcher := &countingDispatcher{
		sendErr: domain.DeliveryError("email.send", errors.New("dial tcp 10.0.0.1:465: i/o timeout")),
	}
	svc := NewService(dispatcher, nil)

	result := svc.Submit(context.Background(), validRequest())

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to send message. Please try again later or contact me directly.", result.Message)
	assert.NotContains(t, result.Message, "dial tcp", "transport detail must not leak to the user")
	assert.Nil(t, result.Errors)
}

func TestService_Submit_Idempotent(t *testing.T) {
	dispatcher := &countingDispatcher{}
	svc := NewService(dispatcher, nil)

	first := svc.Submit(context.Background(), validRequest())
	second := svc.Submit(context.Background(), validRequest())

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	assert.Equal(t, 2, dispatcher.sendCalls, "no dedup state is held across submissions")
}

func TestService_TestConfiguration_OK(t *testing.T) {
	dispatcher := &countingDispatcher{}
	svc := NewService(dispatcher, nil)

	result := svc.TestConfiguration(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, 1, dispatcher.verifyCalls)
	assert.Equal(t, 1, dispatcher.testCalls)
}

func TestService_TestConfiguration_VerifyFailureSkipsSend(t *testing.T) {
	dispatcher := &countingDispatcher{
		verifyErr: domain.ConfigurationError("email.verify", errors.New("auth failed")),
	}
	svc := NewService(dispatcher, nil)

	result := svc.TestConfiguration(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, 0, dispatcher.testCalls, "test send must not run when verify fails")
}

func TestService_TestConfiguration_SendFailure(t *testing.T) {
	dispatcher := &countingDispatcher{
		testErr: domain.DeliveryError("email.send", errors.New("rejected")),
	}
	svc := NewService(dispatcher, nil)

	result := svc.TestConfiguration(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, "Email configuration test failed.", result.Message)
}
