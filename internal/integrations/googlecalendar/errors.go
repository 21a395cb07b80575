package googlecalendar

import "errors"

var (
	// ErrUnauthorized возвращается при ответе 401/403 от Calendar API
	// Означает недействительный или отозванный токен
	ErrUnauthorized = errors.New("googlecalendar client: unauthorized")

	// ErrEventNotFound возвращается, когда событие не найдено (404/410)
	ErrEventNotFound = errors.New("googlecalendar client: event not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Calendar API
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")
)
