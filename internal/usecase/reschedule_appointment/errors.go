package reschedule_appointment

import "errors"

var (
	// ErrMissingFields возвращается, когда отсутствуют обязательные поля
	ErrMissingFields = errors.New("reschedule_appointment: missing required fields")

	// ErrOAuthNotConnected возвращается, когда календарь не подключен
	ErrOAuthNotConnected = errors.New("reschedule_appointment: calendar is not connected")

	// ErrSlotUnavailable возвращается, когда новый интервал пересекается
	// с занятым временем календаря
	ErrSlotUnavailable = errors.New("reschedule_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
