package oauth

import "errors"

var (
	// ErrNotConnected возвращается, когда нет пригодного токена календаря
	// Требуется повторная авторизация оператором через /oauth/google/start
	ErrNotConnected = errors.New("oauth: calendar is not connected")

	// ErrExchange возвращается при ошибке обмена authorization code на токены
	ErrExchange = errors.New("oauth: failed to exchange authorization code")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("oauth: internal error")
)
