package oauthflow

import (
	"net/http"
)

// oauthState статический CSRF-токен потока подключения
// Поток запускает владелец бизнеса вручную, отдельного хранилища state нет
const oauthState = "echo-scheduling"

// Handler обрабатывает подключение Google-календаря через OAuth
type Handler struct {
	oauth OAuthService
	log   Logger
}

// NewHandler создает новый экземпляр handler
func NewHandler(oauth OAuthService, log Logger) *Handler {
	return &Handler{
		oauth: oauth,
		log:   log,
	}
}

// HandleStart GET /oauth/google/start — редирект на страницу согласия Google
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	url := h.oauth.AuthURL(oauthState)
	h.log.Info("[OAuthFlow.HandleStart] Redirecting to Google consent page")
	http.Redirect(w, r, url, http.StatusFound)
}

// HandleCallback GET /oauth/google/callback — обмен кода на токены
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		h.log.Warn("[OAuthFlow.HandleCallback] Callback without code parameter")
		http.Error(w, "missing code parameter", http.StatusBadRequest)
		return
	}

	if err := h.oauth.Exchange(r.Context(), code); err != nil {
		h.log.Error("[OAuthFlow.HandleCallback] Code exchange failed: %v", err)
		http.Error(w, "failed to connect Google Calendar", http.StatusInternalServerError)
		return
	}

	h.log.Info("[OAuthFlow.HandleCallback] Google Calendar connected")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Google Calendar connected. You can close this tab.\n"))
}
