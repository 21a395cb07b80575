package sendgrid

import "errors"

var (
	// ErrUnauthorized возвращается при недействительном API-ключе
	ErrUnauthorized = errors.New("sendgrid client: unauthorized")

	// ErrSendFailed возвращается, когда SendGrid отклонил письмо
	ErrSendFailed = errors.New("sendgrid client: failed to send mail")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sendgrid client: internal error")
)
