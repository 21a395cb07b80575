package cancel_appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoassist/scheduling-service/internal/service/oauth"
)

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) AccessToken(_ context.Context) (string, error) {
	return f.token, f.err
}

type fakeCalendar struct {
	deletedID string
	err       error
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, _ string, eventID string) error {
	if f.err != nil {
		return f.err
	}
	f.deletedID = eventID
	return nil
}

type fakeNotifier struct {
	enabled  bool
	ownerSMS []string
}

func (f *fakeNotifier) CanSendSMS() bool { return f.enabled }

func (f *fakeNotifier) SendOwnerSMS(_ context.Context, body string) error {
	f.ownerSMS = append(f.ownerSMS, body)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_Success(t *testing.T) {
	cal := &fakeCalendar{}
	notifier := &fakeNotifier{enabled: true}
	uc := NewUseCase(&fakeTokens{token: "tok"}, cal, notifier, nopLogger{})

	err := uc.Execute(context.Background(), &Request{AppointmentID: "evt-9"})

	require.NoError(t, err)
	assert.Equal(t, "evt-9", cal.deletedID)
	require.Len(t, notifier.ownerSMS, 1)
	assert.Equal(t, "Appointment cancelled.", notifier.ownerSMS[0])
}

func TestExecute_ReasonIncludedInOwnerSMS(t *testing.T) {
	notifier := &fakeNotifier{enabled: true}
	uc := NewUseCase(&fakeTokens{token: "tok"}, &fakeCalendar{}, notifier, nopLogger{})

	err := uc.Execute(context.Background(), &Request{
		AppointmentID: "evt-9",
		Reason:        "customer sick",
	})

	require.NoError(t, err)
	require.Len(t, notifier.ownerSMS, 1)
	assert.Contains(t, notifier.ownerSMS[0], "Reason: customer sick")
}

func TestExecute_MissingAppointmentID(t *testing.T) {
	cal := &fakeCalendar{}
	uc := NewUseCase(&fakeTokens{token: "tok"}, cal, &fakeNotifier{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{})

	require.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, cal.deletedID)
}

func TestExecute_OAuthNotConnected(t *testing.T) {
	uc := NewUseCase(&fakeTokens{err: oauth.ErrNotConnected}, &fakeCalendar{}, &fakeNotifier{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{AppointmentID: "evt-9"})

	require.ErrorIs(t, err, ErrOAuthNotConnected)
}

func TestExecute_DeleteFailureIsInternal(t *testing.T) {
	cal := &fakeCalendar{err: errors.New("calendar 500")}
	notifier := &fakeNotifier{enabled: true}
	uc := NewUseCase(&fakeTokens{token: "tok"}, cal, notifier, nopLogger{})

	err := uc.Execute(context.Background(), &Request{AppointmentID: "evt-9"})

	require.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.ownerSMS)
}

func TestExecute_SMSDisabledSkipsNotification(t *testing.T) {
	notifier := &fakeNotifier{enabled: false}
	uc := NewUseCase(&fakeTokens{token: "tok"}, &fakeCalendar{}, notifier, nopLogger{})

	err := uc.Execute(context.Background(), &Request{AppointmentID: "evt-9"})

	require.NoError(t, err)
	assert.Empty(t, notifier.ownerSMS)
}
