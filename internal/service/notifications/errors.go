package notifications

import "errors"

var (
	// ErrSMSNotConfigured возвращается при попытке отправить SMS без
	// сконфигурированного SMS-канала
	ErrSMSNotConfigured = errors.New("notifications: sms channel is not configured")

	// ErrEmailNotConfigured возвращается при попытке отправить письмо без
	// сконфигурированного email-канала
	ErrEmailNotConfigured = errors.New("notifications: email channel is not configured")

	// ErrOwnerPhoneNotConfigured возвращается, когда не задан номер владельца
	ErrOwnerPhoneNotConfigured = errors.New("notifications: owner phone is not configured")
)
