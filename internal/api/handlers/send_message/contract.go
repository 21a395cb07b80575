package send_message

import (
	"context"

	usecase "github.com/echoassist/scheduling-service/internal/usecase/send_message"
)

// SendMessageUseCase интерфейс usecase отправки произвольного сообщения
type SendMessageUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
