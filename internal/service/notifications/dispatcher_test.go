package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoassist/scheduling-service/internal/integrations/sendgrid"
)

type fakeSMS struct {
	sent []string
}

func (f *fakeSMS) SendSMS(_ context.Context, to, body string) error {
	f.sent = append(f.sent, to+": "+body)
	return nil
}

type fakeEmail struct {
	messages []*sendgrid.Message
}

func (f *fakeEmail) SendEmail(_ context.Context, msg *sendgrid.Message) error {
	f.messages = append(f.messages, msg)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDispatcher_ChannelCapabilities(t *testing.T) {
	full := NewDispatcher(&fakeSMS{}, &fakeEmail{}, "+18135550000", nopLogger{})
	assert.True(t, full.CanSendSMS())
	assert.True(t, full.CanSendEmail())

	bare := NewDispatcher(nil, nil, "", nopLogger{})
	assert.False(t, bare.CanSendSMS())
	assert.False(t, bare.CanSendEmail())
}

func TestDispatcher_SendSMSWhenDisabled(t *testing.T) {
	d := NewDispatcher(nil, nil, "", nopLogger{})

	err := d.SendSMS(context.Background(), "+18135551234", "hi")

	require.ErrorIs(t, err, ErrSMSNotConfigured)
}

func TestDispatcher_SendOwnerSMS(t *testing.T) {
	sms := &fakeSMS{}
	d := NewDispatcher(sms, nil, "+18135550000", nopLogger{})

	require.NoError(t, d.SendOwnerSMS(context.Background(), "New booking"))

	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+18135550000: New booking", sms.sent[0])
}

func TestDispatcher_SendOwnerSMSWithoutOwnerPhone(t *testing.T) {
	d := NewDispatcher(&fakeSMS{}, nil, "", nopLogger{})

	err := d.SendOwnerSMS(context.Background(), "New booking")

	require.ErrorIs(t, err, ErrOwnerPhoneNotConfigured)
}

func TestDispatcher_SendEmailWithInvite(t *testing.T) {
	email := &fakeEmail{}
	d := NewDispatcher(nil, email, "", nopLogger{})

	invite := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	require.NoError(t, d.SendEmail(context.Background(), "jane@example.com", "Confirmation", "body", invite))

	require.Len(t, email.messages, 1)
	msg := email.messages[0]
	assert.Equal(t, "jane@example.com", msg.To)
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "invite.ics", msg.Attachment.Filename)
	assert.Equal(t, "text/calendar", msg.Attachment.ContentType)
	assert.Equal(t, invite, msg.Attachment.Content)
}

func TestDispatcher_SendEmailWithoutInvite(t *testing.T) {
	email := &fakeEmail{}
	d := NewDispatcher(nil, email, "", nopLogger{})

	require.NoError(t, d.SendEmail(context.Background(), "jane@example.com", "Subject", "body", nil))

	require.Len(t, email.messages, 1)
	assert.Nil(t, email.messages[0].Attachment)
}

func TestDispatcher_SendEmailWhenDisabled(t *testing.T) {
	d := NewDispatcher(&fakeSMS{}, nil, "", nopLogger{})

	err := d.SendEmail(context.Background(), "jane@example.com", "Subject", "body", nil)

	require.ErrorIs(t, err, ErrEmailNotConfigured)
}
