package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/echoassist/scheduling-service/internal/api/handlers"
)

// appSecretHeader заголовок с общим секретом инструмента Echo
const appSecretHeader = "x-app-secret"

// AppSecret проверяет заголовок x-app-secret на защищенных маршрутах
// При пустом секрете в конфигурации маршруты остаются открытыми
func AppSecret(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret != "" {
				got := r.Header.Get(appSecretHeader)
				if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
					handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeUnauthorized, "invalid app secret")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
