package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/echoassist/scheduling-service/internal/domain"
	"github.com/echoassist/scheduling-service/internal/integrations/googlecalendar"
	"github.com/echoassist/scheduling-service/internal/service/oauth"
)

// UseCase use case переноса записи
type UseCase struct {
	tokens   TokenProvider
	calendar CalendarClient
	checker  SlotChecker
	notifier Notifier
	business *domain.Business
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tokens TokenProvider,
	calendar CalendarClient,
	checker SlotChecker,
	notifier Notifier,
	business *domain.Business,
	logger Logger,
) *UseCase {
	return &UseCase{
		tokens:   tokens,
		calendar: calendar,
		checker:  checker,
		notifier: notifier,
		business: business,
		logger:   logger,
	}
}

// Execute выполняет перенос записи
//
// Проверка доступности идёт по живым busy-данным календаря и НЕ исключает
// интервал, занятый самой переносимой записью. Перенос внутри собственного
// интервала может вернуть ErrSlotUnavailable. Поведение воспроизведено
// сознательно и подлежит подтверждению с владельцем продукта.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%s, newStart=%s",
		req.AppointmentID, req.NewStart.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	// 2. Получаем handle календаря
	token, err := uc.tokens.AccessToken(ctx)
	if err != nil {
		if errors.Is(err, oauth.ErrNotConnected) {
			uc.logger.Warn("RescheduleAppointment: calendar is not connected")
			return nil, ErrOAuthNotConnected
		}
		uc.logger.Error("RescheduleAppointment: failed to acquire calendar token: %v", err)
		return nil, fmt.Errorf("%w: failed to acquire token: %v", ErrInternal, err)
	}

	// 3. Проверяем доступность нового интервала
	slot := domain.TimeRange{
		Start: req.NewStart,
		End:   req.NewStart.Add(time.Duration(duration) * time.Minute),
	}

	periods, err := uc.calendar.FreeBusy(ctx, token, slot.Start, slot.End)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: freeBusy query failed: %v", err)
		return nil, fmt.Errorf("%w: freeBusy query failed: %v", ErrInternal, err)
	}

	busy := make([]domain.BusyInterval, len(periods))
	for i, p := range periods {
		busy[i] = domain.BusyInterval{Start: p.Start, End: p.End}
	}

	if !uc.checker.IsSlotFree(slot, busy) {
		uc.logger.Warn("RescheduleAppointment: new slot [%s, %s) is not available",
			slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339))
		return nil, ErrSlotUnavailable
	}

	// 4. Обновляем событие на месте, идентификатор сохраняется
	patch := &googlecalendar.Event{
		Start: &googlecalendar.EventDateTime{
			DateTime: slot.Start.Format(time.RFC3339),
			TimeZone: uc.business.Location.String(),
		},
		End: &googlecalendar.EventDateTime{
			DateTime: slot.End.Format(time.RFC3339),
			TimeZone: uc.business.Location.String(),
		},
	}
	if req.Notes != "" {
		patch.Description = "Rescheduled via Echo voice assistant\nNotes: " + req.Notes
	}

	updated, err := uc.calendar.PatchEvent(ctx, token, req.AppointmentID, patch)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to patch event id=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to patch event: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleAppointment: event id=%s moved to %s",
		updated.ID, slot.Start.Format(time.RFC3339))

	// 5. Уведомляем владельца - best effort
	if uc.notifier.CanSendSMS() {
		when := slot.Start.In(uc.business.Location).Format("Mon, Jan 2 at 3:04 PM")
		msg := fmt.Sprintf("Appointment rescheduled to %s.", when)
		if err := uc.notifier.SendOwnerSMS(ctx, msg); err != nil {
			uc.logger.Error("RescheduleAppointment: owner SMS failed: %v", err)
		}
	}

	eventID := updated.ID
	if eventID == "" {
		eventID = req.AppointmentID
	}

	return &Response{
		EventID:   eventID,
		StartTime: slot.Start,
		EndTime:   slot.End,
		Timezone:  uc.business.Location.String(),
	}, nil
}
