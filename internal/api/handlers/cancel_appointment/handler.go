package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/echoassist/scheduling-service/internal/api/handlers"
	usecase "github.com/echoassist/scheduling-service/internal/usecase/cancel_appointment"
)

// Handler обрабатывает HTTP запросы на отмену записи
type Handler struct {
	uc  CancelUseCase
	log Logger
}

// NewHandler создает новый экземпляр handler
func NewHandler(uc CancelUseCase, log Logger) *Handler {
	return &Handler{
		uc:  uc,
		log: log,
	}
}

// Handle обрабатывает POST /vapi/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[Cancel.Handle] Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, "invalid request body")
		return
	}

	err := h.uc.Execute(r.Context(), &usecase.Request{
		AppointmentID: req.AppointmentID,
		Reason:        req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			handlers.RespondBadRequest(w, handlers.CodeMissingFields, "appointmentId is required")
		case errors.Is(err, usecase.ErrOAuthNotConnected):
			handlers.RespondBadRequest(w, handlers.CodeOAuthNotConnected, "Google Calendar is not connected")
		default:
			h.log.Error("[Cancel.Handle] Execute failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CancelResponse{Success: true})
}
