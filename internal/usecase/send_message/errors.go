package send_message

import "errors"

var (
	// ErrMissingFields возвращается, когда не заданы получатель или текст
	ErrMissingFields = errors.New("send_message: missing required fields")

	// ErrInvalidChannel возвращается при неизвестном канале доставки
	ErrInvalidChannel = errors.New("send_message: invalid channel")

	// ErrSMSNotConfigured возвращается, когда SMS-канал не сконфигурирован
	ErrSMSNotConfigured = errors.New("send_message: sms channel is not configured")

	// ErrEmailNotConfigured возвращается, когда email-канал не сконфигурирован
	ErrEmailNotConfigured = errors.New("send_message: email channel is not configured")

	// ErrInternal возвращается при ошибке доставки
	ErrInternal = errors.New("send_message: internal error")
)
