package find_slots

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

// CalendarClient интерфейс free/busy запросов к календарю
type CalendarClient interface {
	FreeBusy(ctx context.Context, accessToken string, timeMin, timeMax time.Time) ([]googlecalendar.TimePeriod, error)
}

// AvailabilityEngine интерфейс движка доступности
type AvailabilityEngine interface {
	FindSlots(window domain.TimeRange, slotDurationMinutes int, busy []domain.BusyInterval) []domain.Slot
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
