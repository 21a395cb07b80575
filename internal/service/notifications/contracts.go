package notifications

import (
	"context"

	"github.com/echoassist/scheduling-service/internal/integrations/sendgrid"
)

// SMSSender интерфейс SMS-канала
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// EmailSender интерфейс email-канала
type EmailSender interface {
	SendEmail(ctx context.Context, msg *sendgrid.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
