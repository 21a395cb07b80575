package send_message

import (
	"context"
	"fmt"

	"github.com/echoassist/scheduling-service/pkg/phone"
)

// UseCase use case отправки произвольного сообщения через выбранный канал
type UseCase struct {
	notifier     Notifier
	businessName string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(notifier Notifier, businessName string, logger Logger) *UseCase {
	return &UseCase{
		notifier:     notifier,
		businessName: businessName,
		logger:       logger,
	}
}

// Execute выполняет отправку сообщения
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("SendMessage: channel=%s, to=%s", req.Channel, req.To)

	// 1. Валидация входных данных
	if req.To == "" || req.Message == "" {
		uc.logger.Warn("SendMessage: to and message are required")
		return fmt.Errorf("%w: to and message are required", ErrMissingFields)
	}

	// 2. Диспетчеризация по каналу
	switch req.Channel {
	case ChannelSMS:
		if !uc.notifier.CanSendSMS() {
			uc.logger.Warn("SendMessage: sms channel is not configured")
			return ErrSMSNotConfigured
		}
		if err := uc.notifier.SendSMS(ctx, phone.Normalize(req.To), req.Message); err != nil {
			uc.logger.Error("SendMessage: sms delivery failed: %v", err)
			return fmt.Errorf("%w: sms delivery failed: %v", ErrInternal, err)
		}

	case ChannelEmail:
		if !uc.notifier.CanSendEmail() {
			uc.logger.Warn("SendMessage: email channel is not configured")
			return ErrEmailNotConfigured
		}
		subject := req.Subject
		if subject == "" {
			subject = fmt.Sprintf("Message from %s", uc.businessName)
		}
		if err := uc.notifier.SendEmail(ctx, req.To, subject, req.Message, nil); err != nil {
			uc.logger.Error("SendMessage: email delivery failed: %v", err)
			return fmt.Errorf("%w: email delivery failed: %v", ErrInternal, err)
		}

	default:
		uc.logger.Warn("SendMessage: unknown channel %q", req.Channel)
		return fmt.Errorf("%w: %q", ErrInvalidChannel, req.Channel)
	}

	uc.logger.Info("SendMessage: delivered via %s", req.Channel)
	return nil
}
