package book_appointment

import "errors"

var (
	// ErrMissingFields возвращается, когда отсутствуют обязательные поля
	// (customerPhone, requestedStart) или durationMinutes <= 0
	ErrMissingFields = errors.New("book_appointment: missing required fields")

	// ErrOAuthNotConnected возвращается, когда календарь не подключен
	ErrOAuthNotConnected = errors.New("book_appointment: calendar is not connected")

	// ErrSlotUnavailable возвращается, когда запрошенный интервал пересекается
	// с занятым временем календаря
	ErrSlotUnavailable = errors.New("book_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
