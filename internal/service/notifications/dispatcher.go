// Package notifications отправляет готовые SMS и письма через опциональные
// каналы. Никакой бизнес-логики: содержимое формирует вызывающая сторона,
// диспетчер лишь проверяет, что канал сконфигурирован, и передает сообщение.
package notifications

import (
	"context"

	"github.com/echoassist/scheduling-service/internal/integrations/sendgrid"
)

// Dispatcher диспетчер уведомлений с независимыми каналами
// Каждый канал включается отдельно: nil-клиент означает, что канал выключен;
// вызывающая сторона проверяет возможности через CanSendSMS/CanSendEmail
type Dispatcher struct {
	sms        SMSSender   // nil, если SMS-канал не сконфигурирован
	email      EmailSender // nil, если email-канал не сконфигурирован
	ownerPhone string
	logger     Logger
}

// NewDispatcher создает диспетчер уведомлений
func NewDispatcher(sms SMSSender, email EmailSender, ownerPhone string, logger Logger) *Dispatcher {
	return &Dispatcher{
		sms:        sms,
		email:      email,
		ownerPhone: ownerPhone,
		logger:     logger,
	}
}

// CanSendSMS возвращает true, если SMS-канал сконфигурирован
func (d *Dispatcher) CanSendSMS() bool {
	return d.sms != nil
}

// CanSendEmail возвращает true, если email-канал сконфигурирован
func (d *Dispatcher) CanSendEmail() bool {
	return d.email != nil
}

// SendSMS отправляет SMS на указанный номер
func (d *Dispatcher) SendSMS(ctx context.Context, to, body string) error {
	if d.sms == nil {
		return ErrSMSNotConfigured
	}
	return d.sms.SendSMS(ctx, to, body)
}

// SendOwnerSMS отправляет SMS владельцу бизнеса
func (d *Dispatcher) SendOwnerSMS(ctx context.Context, body string) error {
	if d.sms == nil {
		return ErrSMSNotConfigured
	}
	if d.ownerPhone == "" {
		return ErrOwnerPhoneNotConfigured
	}
	return d.sms.SendSMS(ctx, d.ownerPhone, body)
}

// SendEmail отправляет письмо, invite может быть nil
func (d *Dispatcher) SendEmail(ctx context.Context, to, subject, body string, invite []byte) error {
	if d.email == nil {
		return ErrEmailNotConfigured
	}

	msg := &sendgrid.Message{
		To:      to,
		Subject: subject,
		Body:    body,
	}

	if len(invite) > 0 {
		msg.Attachment = &sendgrid.Attachment{
			Filename:    "invite.ics",
			ContentType: "text/calendar",
			Content:     invite,
		}
	}

	return d.email.SendEmail(ctx, msg)
}
