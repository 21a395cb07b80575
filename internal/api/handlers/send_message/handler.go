package send_message

import (
	"errors"
	"net/http"

	"github.com/echoassist/scheduling-service/internal/api/handlers"
	usecase "github.com/echoassist/scheduling-service/internal/usecase/send_message"
)

// Handler обрабатывает HTTP запросы на отправку произвольного сообщения
type Handler struct {
	uc  SendMessageUseCase
	log Logger
}

// NewHandler создает новый экземпляр handler
func NewHandler(uc SendMessageUseCase, log Logger) *Handler {
	return &Handler{
		uc:  uc,
		log: log,
	}
}

// Handle обрабатывает POST /vapi/send-message
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[SendMessage.Handle] Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, "invalid request body")
		return
	}

	err := h.uc.Execute(r.Context(), &usecase.Request{
		Channel: req.Channel,
		To:      req.To,
		Message: req.Message,
		Subject: req.Subject,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			handlers.RespondBadRequest(w, handlers.CodeMissingFields, "to and message are required")
		case errors.Is(err, usecase.ErrInvalidChannel):
			handlers.RespondBadRequest(w, handlers.CodeInvalidChannel, "channel must be sms or email")
		case errors.Is(err, usecase.ErrSMSNotConfigured):
			handlers.RespondBadRequest(w, handlers.CodeSMSNotConfigured, "sms channel is not configured")
		case errors.Is(err, usecase.ErrEmailNotConfigured):
			handlers.RespondBadRequest(w, handlers.CodeEmailNotConfigured, "email channel is not configured")
		default:
			h.log.Error("[SendMessage.Handle] Execute failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SendMessageResponse{Success: true})
}
