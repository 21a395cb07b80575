package oauth

import (
	"context"

	"github.com/echoassist/scheduling-service/internal/infra/credstore"
)

// CredentialStore интерфейс хранилища учетных данных
type CredentialStore interface {
	Load(ctx context.Context) (*credstore.Credentials, error)
	Save(ctx context.Context, creds *credstore.Credentials) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
