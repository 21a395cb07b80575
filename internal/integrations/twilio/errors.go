package twilio

import "errors"

var (
	// ErrUnauthorized возвращается при некорректных учетных данных аккаунта
	ErrUnauthorized = errors.New("twilio client: unauthorized")

	// ErrSendFailed возвращается, когда Twilio отклонил сообщение
	ErrSendFailed = errors.New("twilio client: failed to send message")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("twilio client: internal error")
)
