package cancel_appointment

import "errors"

var (
	// ErrMissingFields возвращается, когда не указан идентификатор записи
	ErrMissingFields = errors.New("cancel_appointment: missing required fields")

	// ErrOAuthNotConnected возвращается, когда календарь не подключен
	ErrOAuthNotConnected = errors.New("cancel_appointment: calendar is not connected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_appointment: internal error")
)
