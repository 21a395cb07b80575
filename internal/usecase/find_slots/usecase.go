package find_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/echoassist/scheduling-service/internal/domain"
	"github.com/echoassist/scheduling-service/internal/service/oauth"
)

// UseCase use case поиска доступных слотов
type UseCase struct {
	tokens       TokenProvider
	calendar     CalendarClient
	engine       AvailabilityEngine
	timezone     string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tokens TokenProvider,
	calendar CalendarClient,
	engine AvailabilityEngine,
	timezone string,
	logger Logger,
) *UseCase {
	return &UseCase{
		tokens:       tokens,
		calendar:     calendar,
		engine:       engine,
		timezone:     timezone,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем окно поиска, подставляя значения по умолчанию
	now := uc.timeProvider.Now()
	window := resolveWindow(req, now)
	duration := req.SlotDurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	uc.logger.Info("FindSlots: window=[%s, %s], duration=%dm",
		window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339), duration)

	// 3. Получаем handle календаря
	token, err := uc.tokens.AccessToken(ctx)
	if err != nil {
		if errors.Is(err, oauth.ErrNotConnected) {
			uc.logger.Warn("FindSlots: calendar is not connected")
			return nil, ErrOAuthNotConnected
		}
		uc.logger.Error("FindSlots: failed to acquire calendar token: %v", err)
		return nil, fmt.Errorf("%w: failed to acquire token: %v", ErrInternal, err)
	}

	// 4. Запрашиваем занятые интервалы на все окно
	periods, err := uc.calendar.FreeBusy(ctx, token, window.Start, window.End)
	if err != nil {
		uc.logger.Error("FindSlots: freeBusy query failed: %v", err)
		return nil, fmt.Errorf("%w: freeBusy query failed: %v", ErrInternal, err)
	}

	busy := make([]domain.BusyInterval, len(periods))
	for i, p := range periods {
		busy[i] = domain.BusyInterval{Start: p.Start, End: p.End}
	}

	// 5. Вычисляем доступные слоты
	slots := uc.engine.FindSlots(window, duration, busy)

	uc.logger.Info("FindSlots: %d slots found (%d busy intervals)", len(slots), len(busy))

	return &Response{
		Slots:    slots,
		Timezone: uc.timezone,
	}, nil
}

// resolveWindow подставляет границы окна по умолчанию: now -> now+14d
func resolveWindow(req *Request, now time.Time) domain.TimeRange {
	window := domain.TimeRange{
		Start: now,
		End:   now.AddDate(0, 0, domain.DefaultSearchWindowDays),
	}

	if req.Start != nil {
		window.Start = *req.Start
	}
	if req.End != nil {
		window.End = *req.End
	}

	return window
}
