package reschedule_appointment

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

// CalendarClient интерфейс календаря: free/busy проверка и обновление события
type CalendarClient interface {
	FreeBusy(ctx context.Context, accessToken string, timeMin, timeMax time.Time) ([]googlecalendar.TimePeriod, error)
	PatchEvent(ctx context.Context, accessToken, eventID string, patch *googlecalendar.Event) (*googlecalendar.Event, error)
}

// SlotChecker интерфейс одиночной проверки слота
type SlotChecker interface {
	IsSlotFree(slot domain.TimeRange, busy []domain.BusyInterval) bool
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
