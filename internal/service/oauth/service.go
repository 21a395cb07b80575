// Package oauth управляет жизненным циклом OAuth-токенов Google Calendar:
// выдача consent URL, обмен кода на токены и обновление access token по
// refresh token с сохранением ротации в хранилище.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/echoassist/scheduling-service/internal/infra/credstore"
)

// calendarScope полный доступ к календарю: freeBusy + CRUD событий
const calendarScope = "https://www.googleapis.com/auth/calendar"

// expirySkew запас до истечения токена, при котором он считается устаревшим
const expirySkew = time.Minute

// Service сервис авторизации Google Calendar
type Service struct {
	oauthCfg *oauth2.Config
	store    CredentialStore
	logger   Logger
}

// NewService создает новый экземпляр oauth-сервиса
func NewService(clientID, clientSecret, redirectURL string, store CredentialStore, logger Logger) *Service {
	return &Service{
		oauthCfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{calendarScope},
			Endpoint:     google.Endpoint,
		},
		store:  store,
		logger: logger,
	}
}

// AuthURL возвращает URL страницы согласия Google
// offline + consent нужны, чтобы Google выдал refresh token
func (s *Service) AuthURL(state string) string {
	return s.oauthCfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange обменивает authorization code на пару токенов и сохраняет её
func (s *Service) Exchange(ctx context.Context, code string) error {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("Exchange: code exchange failed: %v", err)
		return fmt.Errorf("%w: %v", ErrExchange, err)
	}

	creds := &credstore.Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}

	if err := s.store.Save(ctx, creds); err != nil {
		s.logger.Error("Exchange: failed to persist credentials: %v", err)
		return fmt.Errorf("%w: failed to save credentials: %v", ErrInternal, err)
	}

	s.logger.Info("Exchange: calendar connected, token expires at %s", token.Expiry.Format(time.RFC3339))
	return nil
}

// AccessToken возвращает действующий access token
// Если токен истёк и есть refresh token, обновляет его через Google и
// сохраняет ротацию; при невозможности получить пригодный токен возвращает
// ErrNotConnected (терминально, повторная авторизация выполняется вручную)
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	creds, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, credstore.ErrNotConnected) {
			return "", ErrNotConnected
		}
		return "", fmt.Errorf("%w: failed to load credentials: %v", ErrInternal, err)
	}

	if creds.AccessToken != "" && time.Until(creds.Expiry) > expirySkew {
		return creds.AccessToken, nil
	}

	if creds.RefreshToken == "" {
		s.logger.Warn("AccessToken: token expired and no refresh token available")
		return "", ErrNotConnected
	}

	refreshed, err := s.refresh(ctx, creds.RefreshToken)
	if err != nil {
		s.logger.Error("AccessToken: refresh failed: %v", err)
		return "", ErrNotConnected
	}

	// Google может не вернуть refresh token при обновлении - сохраняем старый
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = creds.RefreshToken
	}

	if err := s.store.Save(ctx, refreshed); err != nil {
		// Токен действителен до истечения, потеря ротации не фатальна
		s.logger.Error("AccessToken: failed to persist refreshed token: %v", err)
	}

	return refreshed.AccessToken, nil
}

// refresh получает новый access token по refresh token
func (s *Service) refresh(ctx context.Context, refreshToken string) (*credstore.Credentials, error) {
	tokenSource := s.oauthCfg.TokenSource(ctx, &oauth2.Token{
		RefreshToken: refreshToken,
	})

	token, err := tokenSource.Token()
	if err != nil {
		return nil, err
	}

	return &credstore.Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}, nil
}
