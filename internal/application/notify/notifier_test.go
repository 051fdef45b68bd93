package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(n domain.EmailNotification) error {
	return m.Called(n).Error(0)
}

type panicMailer struct{}

func (panicMailer) SendEmail(domain.EmailNotification) error { panic("nil transport") }

type mockSMSSender struct{ mock.Mock }

func (m *mockSMSSender) SendSMS(ctx context.Context, to, msg string) error {
	return m.Called(ctx, to, msg).Error(0)
}

var email = domain.EmailNotification{To: "jane@example.com", From: "me@gmail.com", Subject: "s", Text: "t"}

func TestInitialize_DisabledWithoutCredentials(t *testing.T) {
	assert.False(t, Initialize(&config.Config{}).Enabled())
	assert.False(t, Initialize(&config.Config{EmailUser: "me@gmail.com"}).Enabled())
	assert.False(t, Initialize(&config.Config{EmailPass: "pw"}).Enabled())
}

func TestInitialize_EnabledWithCredentials(t *testing.T) {
	n := Initialize(&config.Config{EmailUser: "me@gmail.com", EmailPass: "pw", SMTPHost: "smtp.gmail.com", SMTPPort: 587})
	assert.True(t, n.Enabled())
}

func TestNew_NilMailerIsDisabled(t *testing.T) {
	assert.False(t, New(nil).Enabled())
}

func TestSend_Disabled_ReturnsFalse(t *testing.T) {
	assert.False(t, Disabled().Send(context.Background(), email))
}

func TestSend_Success(t *testing.T) {
	m := &mockMailer{}
	m.On("SendEmail", email).Return(nil)
	assert.True(t, New(m).Send(context.Background(), email))
	m.AssertExpectations(t)
}

func TestSend_TransportError_ReturnsFalse(t *testing.T) {
	m := &mockMailer{}
	m.On("SendEmail", email).Return(errors.New("535 bad credentials"))
	assert.False(t, New(m).Send(context.Background(), email))
}

func TestSend_Panic_ReturnsFalse(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.False(t, New(panicMailer{}).Send(context.Background(), email))
	})
}

func TestAlerter_DisabledWithoutPhone(t *testing.T) {
	assert.False(t, InitializeAlerter(&config.Config{}).Enabled())
	assert.False(t, NewAlerter(&mockSMSSender{}, "").Enabled())
	assert.False(t, NewAlerter(nil, "+15551234567").Enabled())
	assert.False(t, (&Alerter{}).Alert(context.Background(), domain.ContactMessage{ID: 1}))
}

func TestAlerter_Sends(t *testing.T) {
	s := &mockSMSSender{}
	msg := domain.ContactMessage{ID: 4, Name: "Jane", Email: "jane@example.com", Message: "Hello!"}
	s.On("SendSMS", mock.Anything, "+15551234567", "New portfolio message #4 from Jane <jane@example.com>: Hello!").Return(nil)

	assert.True(t, NewAlerter(s, "+15551234567").Alert(context.Background(), msg))
	s.AssertExpectations(t)
}

func TestAlerter_ErrorReturnsFalse(t *testing.T) {
	s := &mockSMSSender{}
	s.On("SendSMS", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("opted out"))
	assert.False(t, NewAlerter(s, "+1").Alert(context.Background(), domain.ContactMessage{ID: 1}))
}

func TestAlertText_Truncates(t *testing.T) {
	long := domain.ContactMessage{ID: 1, Name: "Jo", Email: "jo@x.io", Message: strings.Repeat("é", 500)}
	got := []rune(AlertText(long))
	assert.Len(t, got, maxAlertRunes)
	assert.Equal(t, '…', got[len(got)-1])
}
