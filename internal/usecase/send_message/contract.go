package send_message

import "context"

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	CanSendSMS() bool
	CanSendEmail() bool
	SendSMS(ctx context.Context, to, body string) error
	SendEmail(ctx context.Context, to, subject, body string, invite []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
