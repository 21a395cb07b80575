package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/echoassist/scheduling-service/internal/service/oauth"
)

// UseCase use case отмены записи
type UseCase struct {
	tokens   TokenProvider
	calendar CalendarClient
	notifier Notifier
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tokens TokenProvider,
	calendar CalendarClient,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		tokens:   tokens,
		calendar: calendar,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute выполняет отмену записи
// Событие удаляется безусловно: проверка существования не выполняется сверх
// того, что обеспечивает сам календарь. Уведомляется только владелец.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelAppointment: id=%s", req.AppointmentID)

	// 1. Валидация входных данных
	if req.AppointmentID == "" {
		uc.logger.Warn("CancelAppointment: appointmentId is missing")
		return fmt.Errorf("%w: appointmentId is required", ErrMissingFields)
	}

	// 2. Получаем handle календаря
	token, err := uc.tokens.AccessToken(ctx)
	if err != nil {
		if errors.Is(err, oauth.ErrNotConnected) {
			uc.logger.Warn("CancelAppointment: calendar is not connected")
			return ErrOAuthNotConnected
		}
		uc.logger.Error("CancelAppointment: failed to acquire calendar token: %v", err)
		return fmt.Errorf("%w: failed to acquire token: %v", ErrInternal, err)
	}

	// 3. Удаляем событие
	if err := uc.calendar.DeleteEvent(ctx, token, req.AppointmentID); err != nil {
		uc.logger.Error("CancelAppointment: failed to delete event id=%s: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: failed to delete event: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelAppointment: event id=%s deleted", req.AppointmentID)

	// 4. Уведомляем владельца - best effort
	if uc.notifier.CanSendSMS() {
		msg := "Appointment cancelled."
		if req.Reason != "" {
			msg = fmt.Sprintf("Appointment cancelled. Reason: %s", req.Reason)
		}
		if err := uc.notifier.SendOwnerSMS(ctx, msg); err != nil {
			uc.logger.Error("CancelAppointment: owner SMS failed: %v", err)
		}
	}

	return nil
}
