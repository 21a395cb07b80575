package cancel_appointment

import "context"

// TokenProvider интерфейс получения действующего access token календаря
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// CalendarClient интерфейс удаления события календаря
type CalendarClient interface {
	DeleteEvent(ctx context.Context, accessToken, eventID string) error
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	CanSendSMS() bool
	SendOwnerSMS(ctx context.Context, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
