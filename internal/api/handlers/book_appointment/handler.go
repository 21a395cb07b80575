package book_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/echoassist/scheduling-service/internal/api/handlers"
	usecase "github.com/echoassist/scheduling-service/internal/usecase/book_appointment"
)

// Handler обрабатывает HTTP запросы на создание записи
type Handler struct {
	uc  BookAppointmentUseCase
	loc *time.Location
	log Logger
}

// NewHandler создает новый экземпляр handler
func NewHandler(uc BookAppointmentUseCase, loc *time.Location, log Logger) *Handler {
	return &Handler{
		uc:  uc,
		loc: loc,
		log: log,
	}
}

// Handle обрабатывает POST /vapi/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[BookAppointment.Handle] Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, "invalid request body")
		return
	}

	if req.StartDateTimeISO == "" {
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, "startDateTimeISO is required")
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartDateTimeISO)
	if err != nil {
		h.log.Warn("[BookAppointment.Handle] Invalid startDateTimeISO: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, "startDateTimeISO must be a valid ISO 8601 timestamp")
		return
	}

	resp, err := h.uc.Execute(r.Context(), &usecase.Request{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		Service:         req.Service,
		RequestedStart:  start,
		DurationMinutes: req.DurationMin,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			handlers.RespondBadRequest(w, handlers.CodeMissingFields, err.Error())
		case errors.Is(err, usecase.ErrOAuthNotConnected):
			handlers.RespondBadRequest(w, handlers.CodeOAuthNotConnected, "Google Calendar is not connected")
		case errors.Is(err, usecase.ErrSlotUnavailable):
			handlers.RespondConflict(w, handlers.CodeSlotUnavailable, "requested time is no longer available")
		default:
			h.log.Error("[BookAppointment.Handle] Execute failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookResponse{
		Success:   true,
		EventID:   resp.EventID,
		StartTime: resp.StartTime.In(h.loc).Format(time.RFC3339),
		EndTime:   resp.EndTime.In(h.loc).Format(time.RFC3339),
		Timezone:  resp.Timezone,
	})
}
