// Package credstore хранит единственную запись OAuth-учетных данных календаря.
// Сервис не владеет токенами: оркестратор лишь одалживает handle на время
// запроса, персистентность полностью на стороне хранилища.
package credstore

import (
	"context"
	"time"
)

// Credentials пара access/refresh токенов с временем истечения
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
}

// Store интерфейс хранилища учетных данных
// Load возвращает ErrNotConnected, если запись отсутствует
type Store interface {
	Load(ctx context.Context) (*Credentials, error)
	Save(ctx context.Context, creds *Credentials) error
}
