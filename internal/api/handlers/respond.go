// Package handlers содержит общие помощники HTTP-слоя: декодирование запросов
// и формирование ответов с кодами ошибок из фиксированной таксономии.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Коды ошибок API
const (
	CodeMissingFields      = "missing_fields"
	CodeOAuthNotConnected  = "oauth_not_connected"
	CodeSlotUnavailable    = "slot_unavailable"
	CodeInvalidChannel     = "invalid_channel"
	CodeSMSNotConfigured   = "sms_not_configured"
	CodeEmailNotConfigured = "email_not_configured"
	CodeUnauthorized       = "unauthorized"
	CodeInternalError      = "internal_error"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON-ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		// Ошибку кодирования уже не вернуть клиенту, заголовки отправлены
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ответ с кодом ошибки из таксономии
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Success: false, Error: code, Message: message})
}

// RespondBadRequest пишет 400 с указанным кодом ошибки
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondConflict пишет 409 с указанным кодом ошибки
func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

// RespondInternalError пишет 500 без деталей внутренней ошибки
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
