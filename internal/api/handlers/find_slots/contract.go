package find_slots

import (
	"context"

	usecase "github.com/echoassist/scheduling-service/internal/usecase/find_slots"
)

// FindSlotsUseCase интерфейс usecase поиска свободных слотов
type FindSlotsUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
