package find_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_slots: invalid input data")

	// ErrOAuthNotConnected возвращается, когда календарь не подключен
	ErrOAuthNotConnected = errors.New("find_slots: calendar is not connected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_slots: internal error")
)
