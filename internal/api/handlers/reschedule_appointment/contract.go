package reschedule_appointment

import (
	"context"

	usecase "github.com/echoassist/scheduling-service/internal/usecase/reschedule_appointment"
)

// RescheduleUseCase интерфейс usecase переноса записи
type RescheduleUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
