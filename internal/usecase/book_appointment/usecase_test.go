package book_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoassist/scheduling-service/internal/domain"
	"github.com/echoassist/scheduling-service/internal/integrations/googlecalendar"
	"github.com/echoassist/scheduling-service/internal/service/oauth"
)

// --- Фейки зависимостей ---

type fakeTokens struct {
	token string
	err   error
	calls int
}

func (f *fakeTokens) AccessToken(_ context.Context) (string, error) {
	f.calls++
	return f.token, f.err
}

type fakeCalendar struct {
	busy        []googlecalendar.TimePeriod
	freeBusyErr error
	inserted    *googlecalendar.Event
	insertErr   error
	createdID   string
}

func (f *fakeCalendar) FreeBusy(_ context.Context, _ string, _, _ time.Time) ([]googlecalendar.TimePeriod, error) {
	return f.busy, f.freeBusyErr
}

func (f *fakeCalendar) InsertEvent(_ context.Context, _ string, event *googlecalendar.Event) (*googlecalendar.Event, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = event
	created := *event
	created.ID = f.createdID
	return &created, nil
}

type fakeChecker struct{}

func (fakeChecker) IsSlotFree(slot domain.TimeRange, busy []domain.BusyInterval) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return false
		}
	}
	return true
}

type fakeNotifier struct {
	smsEnabled   bool
	emailEnabled bool
	smsErr       error

	customerSMS []string
	ownerSMS    []string
	emails      []sentEmail
}

type sentEmail struct {
	to      string
	subject string
	body    string
	invite  []byte
}

func (f *fakeNotifier) CanSendSMS() bool   { return f.smsEnabled }
func (f *fakeNotifier) CanSendEmail() bool { return f.emailEnabled }

func (f *fakeNotifier) SendSMS(_ context.Context, to, body string) error {
	f.customerSMS = append(f.customerSMS, to+": "+body)
	return f.smsErr
}

func (f *fakeNotifier) SendOwnerSMS(_ context.Context, body string) error {
	f.ownerSMS = append(f.ownerSMS, body)
	return f.smsErr
}

func (f *fakeNotifier) SendEmail(_ context.Context, to, subject, body string, invite []byte) error {
	f.emails = append(f.emails, sentEmail{to: to, subject: subject, body: body, invite: invite})
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Хелперы ---

func testBusiness(t *testing.T) *domain.Business {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return &domain.Business{Name: "Glow Salon", Address: "12 Main St", Location: loc}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return &Request{
		CustomerName:    "Jane Doe",
		CustomerPhone:   "8135551234",
		CustomerEmail:   "jane@example.com",
		Service:         "Haircut",
		RequestedStart:  time.Date(2026, 3, 2, 10, 0, 0, 0, loc),
		DurationMinutes: 30,
	}
}

func newTestUseCase(t *testing.T, tokens *fakeTokens, cal *fakeCalendar, notifier *fakeNotifier) *UseCase {
	t.Helper()
	return NewUseCase(tokens, cal, fakeChecker{}, notifier, testBusiness(t), nopLogger{})
}

// --- Тесты ---

func TestExecute_MissingFieldsBeforeExternalCalls(t *testing.T) {
	tokens := &fakeTokens{token: "tok"}
	cal := &fakeCalendar{createdID: "evt-1"}
	uc := newTestUseCase(t, tokens, cal, &fakeNotifier{})

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "no phone", mutate: func(r *Request) { r.CustomerPhone = "" }},
		{name: "no start", mutate: func(r *Request) { r.RequestedStart = time.Time{} }},
		{name: "zero duration", mutate: func(r *Request) { r.DurationMinutes = 0 }},
		{name: "negative duration", mutate: func(r *Request) { r.DurationMinutes = -15 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrMissingFields)
			assert.Nil(t, resp)
		})
	}

	// Валидация отрабатывает до обращения за токеном
	assert.Zero(t, tokens.calls)
	assert.Nil(t, cal.inserted)
}

func TestExecute_OAuthNotConnected(t *testing.T) {
	tokens := &fakeTokens{err: oauth.ErrNotConnected}
	cal := &fakeCalendar{}
	uc := newTestUseCase(t, tokens, cal, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.ErrorIs(t, err, ErrOAuthNotConnected)
	assert.Nil(t, resp)
	assert.Nil(t, cal.inserted)
}

func TestExecute_SlotUnavailableDoesNotInsert(t *testing.T) {
	req := validRequest(t)
	tokens := &fakeTokens{token: "tok"}
	cal := &fakeCalendar{
		busy: []googlecalendar.TimePeriod{
			{Start: req.RequestedStart.Add(15 * time.Minute), End: req.RequestedStart.Add(45 * time.Minute)},
		},
	}
	uc := newTestUseCase(t, tokens, cal, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, resp)
	assert.Nil(t, cal.inserted)
}

func TestExecute_Success(t *testing.T) {
	req := validRequest(t)
	tokens := &fakeTokens{token: "tok"}
	cal := &fakeCalendar{createdID: "evt-42"}
	notifier := &fakeNotifier{smsEnabled: true, emailEnabled: true}
	uc := newTestUseCase(t, tokens, cal, notifier)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "evt-42", resp.EventID)
	assert.True(t, resp.StartTime.Equal(req.RequestedStart))
	assert.True(t, resp.EndTime.Equal(req.RequestedStart.Add(30*time.Minute)))
	assert.Equal(t, "America/New_York", resp.Timezone)

	// Событие календаря собрано из запроса
	require.NotNil(t, cal.inserted)
	assert.Equal(t, "Haircut - Jane Doe", cal.inserted.Summary)
	assert.Contains(t, cal.inserted.Description, "Booked via Echo voice assistant")
	assert.Contains(t, cal.inserted.Description, "Phone: +18135551234")
	require.Len(t, cal.inserted.Attendees, 1)
	assert.Equal(t, "jane@example.com", cal.inserted.Attendees[0].Email)

	// Уведомления: SMS клиенту и владельцу, письмо с ICS-вложением
	require.Len(t, notifier.customerSMS, 1)
	assert.Contains(t, notifier.customerSMS[0], "+18135551234")
	assert.Contains(t, notifier.customerSMS[0], "Glow Salon")
	require.Len(t, notifier.ownerSMS, 1)
	assert.Contains(t, notifier.ownerSMS[0], "New booking")
	require.Len(t, notifier.emails, 1)
	assert.Equal(t, "jane@example.com", notifier.emails[0].to)
	assert.Contains(t, string(notifier.emails[0].invite), "BEGIN:VCALENDAR")
}

func TestExecute_NoEmailSkipsEmailChannel(t *testing.T) {
	req := validRequest(t)
	req.CustomerEmail = ""
	cal := &fakeCalendar{createdID: "evt-1"}
	notifier := &fakeNotifier{smsEnabled: true, emailEnabled: true}
	uc := newTestUseCase(t, &fakeTokens{token: "tok"}, cal, notifier)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, notifier.emails)
	assert.Empty(t, cal.inserted.Attendees)
	assert.NotNil(t, resp)
}

func TestExecute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	req := validRequest(t)
	cal := &fakeCalendar{createdID: "evt-1"}
	notifier := &fakeNotifier{smsEnabled: true, smsErr: errors.New("twilio down")}
	uc := newTestUseCase(t, &fakeTokens{token: "tok"}, cal, notifier)

	resp, err := uc.Execute(context.Background(), req)

	// Запись в календаре уже зафиксирована, сбой SMS не откатывает её
	require.NoError(t, err)
	assert.Equal(t, "evt-1", resp.EventID)
}

func TestExecute_InsertFailureIsInternal(t *testing.T) {
	req := validRequest(t)
	cal := &fakeCalendar{insertErr: errors.New("calendar 500")}
	notifier := &fakeNotifier{smsEnabled: true}
	uc := newTestUseCase(t, &fakeTokens{token: "tok"}, cal, notifier)

	resp, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
	assert.Empty(t, notifier.customerSMS)
}
