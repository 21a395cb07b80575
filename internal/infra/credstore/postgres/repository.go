// Package postgres реализует credstore.Store поверх таблицы PostgreSQL.
// Подключается вместо файлового хранилища, когда в конфигурации задана
// секция [database].
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/echoassist/scheduling-service/internal/infra/credstore"
)

const provider = "google"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repository хранилище учетных данных в PostgreSQL
// Таблица oauth_credentials: provider PK, access_token, refresh_token, expiry
type Repository struct {
	db *sql.DB
}

// NewRepository создает новый экземпляр хранилища
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Load читает запись учетных данных провайдера
func (r *Repository) Load(ctx context.Context) (*credstore.Credentials, error) {
	query, args, err := builder.
		Select("access_token", "refresh_token", "expiry").
		From("oauth_credentials").
		Where(squirrel.Eq{"provider": provider}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build query: %v", ErrBuildQuery, err)
	}

	var creds credstore.Credentials
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&creds.AccessToken,
		&creds.RefreshToken,
		&creds.Expiry,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, credstore.ErrNotConnected
		}
		return nil, fmt.Errorf("%w: Load - execute query: %v", ErrExecQuery, err)
	}

	if creds.AccessToken == "" && creds.RefreshToken == "" {
		return nil, credstore.ErrNotConnected
	}

	return &creds, nil
}

// Save сохраняет учетные данные (upsert по провайдеру)
func (r *Repository) Save(ctx context.Context, creds *credstore.Credentials) error {
	query, args, err := builder.
		Insert("oauth_credentials").
		Columns("provider", "access_token", "refresh_token", "expiry").
		Values(provider, creds.AccessToken, creds.RefreshToken, creds.Expiry).
		Suffix(`ON CONFLICT (provider) DO UPDATE
			SET access_token = EXCLUDED.access_token,
			    refresh_token = EXCLUDED.refresh_token,
			    expiry = EXCLUDED.expiry,
			    updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute query: %v", ErrExecQuery, err)
	}

	return nil
}
