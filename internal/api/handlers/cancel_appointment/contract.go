package cancel_appointment

import (
	"context"

	usecase "github.com/echoassist/scheduling-service/internal/usecase/cancel_appointment"
)

// CancelUseCase интерфейс usecase отмены записи
type CancelUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
