package oauthflow

import "context"

// OAuthService интерфейс oauth-сервиса календаря
type OAuthService interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
