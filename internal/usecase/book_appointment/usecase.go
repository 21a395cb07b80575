package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/echoassist/scheduling-service/internal/domain"
	"github.com/echoassist/scheduling-service/internal/integrations/googlecalendar"
	"github.com/echoassist/scheduling-service/internal/service/oauth"
	"github.com/echoassist/scheduling-service/pkg/ics"
	"github.com/echoassist/scheduling-service/pkg/phone"
)

// UseCase use case создания записи
//
// Конвейер одного запроса: валидация -> проверка доступности -> запись в
// календарь -> уведомления. Промежуточное состояние не сохраняется; после
// успешной записи в календарь сбои уведомлений не откатывают бронирование.
type UseCase struct {
	tokens       TokenProvider
	calendar     CalendarClient
	checker      SlotChecker
	notifier     Notifier
	business     *domain.Business
	timeProvider TimeProvider
	logger       Logger
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
		tokens:       tokens,
		calendar:     calendar,
		checker:      checker,
		notifier:     notifier,
		business:     business,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет создание записи
//
// Проверка и запись не атомарны: два одновременных запроса на один слот могут
// оба пройти проверку до того, как один из них запишет событие. Это осознанный
// best-effort вариант при низком объеме записей в рабочие часы; сериализация
// по ключу календарь+временной интервал описана в SPEC_FULL как рекомендуемое
// упрочнение.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: service=%q, start=%s, duration=%dm",
		req.Service, req.RequestedStart.Format(time.RFC3339), req.DurationMinutes)

	// 1. Валидация входных данных - до любых внешних вызовов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем handle календаря
	token, err := uc.tokens.AccessToken(ctx)
	if err != nil {
		if errors.Is(err, oauth.ErrNotConnected) {
			uc.logger.Warn("BookAppointment: calendar is not connected")
			return nil, ErrOAuthNotConnected
		}
		uc.logger.Error("BookAppointment: failed to acquire calendar token: %v", err)
		return nil, fmt.Errorf("%w: failed to acquire token: %v", ErrInternal, err)
	}

	// 3. Повторная проверка доступности ровно на запрошенный интервал
	slot := domain.TimeRange{
		Start: req.RequestedStart,
		End:   req.RequestedStart.Add(time.Duration(req.DurationMinutes) * time.Minute),
	}

	periods, err := uc.calendar.FreeBusy(ctx, token, slot.Start, slot.End)
	if err != nil {
		uc.logger.Error("BookAppointment: freeBusy query failed: %v", err)
		return nil, fmt.Errorf("%w: freeBusy query failed: %v", ErrInternal, err)
	}

	busy := make([]domain.BusyInterval, len(periods))
	for i, p := range periods {
		busy[i] = domain.BusyInterval{Start: p.Start, End: p.End}
	}

	if !uc.checker.IsSlotFree(slot, busy) {
		uc.logger.Warn("BookAppointment: slot [%s, %s) is not available",
			slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339))
		return nil, ErrSlotUnavailable
	}

	// 4. Запись в календарь - точка невозврата
	summary := buildSummary(req)
	description := buildDescription(req)

	event := &googlecalendar.Event{
		Summary:     summary,
		Description: description,
		Start: &googlecalendar.EventDateTime{
			DateTime: slot.Start.Format(time.RFC3339),
			TimeZone: uc.business.Location.String(),
		},
		End: &googlecalendar.EventDateTime{
			DateTime: slot.End.Format(time.RFC3339),
			TimeZone: uc.business.Location.String(),
		},
	}
	if req.CustomerEmail != "" {
		event.Attendees = []googlecalendar.Attendee{{Email: req.CustomerEmail}}
	}

	created, err := uc.calendar.InsertEvent(ctx, token, event)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to insert event: %v", err)
		return nil, fmt.Errorf("%w: failed to insert event: %v", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: event created, id=%s", created.ID)

	// 5. Уведомления - best effort, каналы независимы, сбои не влияют
	// на уже зафиксированную запись
	uc.notify(ctx, req, slot, summary, description)

	return &Response{
		EventID:   created.ID,
		StartTime: slot.Start,
		EndTime:   slot.End,
		Timezone:  uc.business.Location.String(),
	}, nil
}

// notify рассылает подтверждения клиенту и владельцу
// Каждый канал обрабатывается независимо: ошибка одного не блокирует другие
func (uc *UseCase) notify(ctx context.Context, req *Request, slot domain.TimeRange, summary, description string) {
	localStart := slot.Start.In(uc.business.Location)
	when := localStart.Format("Mon, Jan 2 at 3:04 PM")

	if uc.notifier.CanSendSMS() {
		customerPhone := phone.Normalize(req.CustomerPhone)
		customerMsg := fmt.Sprintf("Your %s appointment at %s is confirmed for %s. Reply STOP to opt out.",
			req.Service, uc.business.Name, when)
		if err := uc.notifier.SendSMS(ctx, customerPhone, customerMsg); err != nil {
			uc.logger.Error("BookAppointment: customer SMS failed: %v", err)
		}

		ownerMsg := fmt.Sprintf("New booking: %s for %s on %s.",
			req.Service, customerContact(req), when)
		if err := uc.notifier.SendOwnerSMS(ctx, ownerMsg); err != nil {
			uc.logger.Error("BookAppointment: owner SMS failed: %v", err)
		}
	}

	if req.CustomerEmail != "" && uc.notifier.CanSendEmail() {
		invite := ics.Build(ics.Event{
			UID:         ics.NewUID(),
			CreatedAt:   uc.timeProvider.Now(),
			Start:       slot.Start,
			End:         slot.End,
			Summary:     summary,
			Location:    uc.business.Address,
			Description: description,
		})

		subject := fmt.Sprintf("Appointment confirmation - %s", uc.business.Name)
		body := fmt.Sprintf("Your %s appointment is confirmed for %s.\n\nA calendar invite is attached.",
			req.Service, when)

		if err := uc.notifier.SendEmail(ctx, req.CustomerEmail, subject, body, invite); err != nil {
			uc.logger.Error("BookAppointment: confirmation email failed: %v", err)
		}
	}
}

// customerContact возвращает имя клиента, либо его номер, если имя не указано
func customerContact(req *Request) string {
	if req.CustomerName != "" {
		return req.CustomerName
	}
	return phone.Normalize(req.CustomerPhone)
}
