package book_appointment

import (
	"context"
	"time"

	"github.com/echoassist/scheduling-service/internal/domain"
	"github.com/echoassist/scheduling-service/internal/integrations/googlecalendar"
)

// TokenProvider интерфейс получения действующего access token календаря
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// CalendarClient интерфейс календаря: free/busy проверка и создание события
type CalendarClient interface {
	FreeBusy(ctx context.Context, accessToken string, timeMin, timeMax time.Time) ([]googlecalendar.TimePeriod, error)
	InsertEvent(ctx context.Context, accessToken string, event *googlecalendar.Event) (*googlecalendar.Event, error)
}

// SlotChecker интерфейс одиночной проверки слота
// Переиспользует тест пересечения движка доступности для случая
// единственного кандидата
type SlotChecker interface {
	IsSlotFree(slot domain.TimeRange, busy []domain.BusyInterval) bool
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	CanSendSMS() bool
	CanSendEmail() bool
	SendSMS(ctx context.Context, to, body string) error
	SendOwnerSMS(ctx context.Context, body string) error
	SendEmail(ctx context.Context, to, subject, body string, invite []byte) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
