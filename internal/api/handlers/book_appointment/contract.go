package book_appointment

import (
	"context"

	usecase "github.com/echoassist/scheduling-service/internal/usecase/book_appointment"
)

// BookAppointmentUseCase интерфейс usecase создания записи
type BookAppointmentUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
