package reschedule_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/echoassist/scheduling-service/internal/api/handlers"
	usecase "github.com/echoassist/scheduling-service/internal/usecase/reschedule_appointment"
)

// Handler обрабатывает HTTP запросы на перенос записи
type Handler struct {
	uc  RescheduleUseCase
	loc *time.Location
	log Logger
}

// NewHandler создает новый экземпляр handler
func NewHandler(uc RescheduleUseCase, loc *time.Location, log Logger) *Handler {
	return &Handler{
		uc:  uc,
		loc: loc,
		log: log,
	}
}

// Handle обрабатывает POST /vapi/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[Reschedule.Handle] Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, "invalid request body")
		return
	}

	if req.AppointmentID == "" || req.NewStartDateTimeISO == "" {
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, "appointmentId and newStartDateTimeISO are required")
		return
	}
	newStart, err := time.Parse(time.RFC3339, req.NewStartDateTimeISO)
	if err != nil {
		h.log.Warn("[Reschedule.Handle] Invalid newStartDateTimeISO: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, "newStartDateTimeISO must be a valid ISO 8601 timestamp")
		return
	}

	resp, err := h.uc.Execute(r.Context(), &usecase.Request{
		AppointmentID:   req.AppointmentID,
		NewStart:        newStart,
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
			h.log.Error("[Reschedule.Handle] Execute failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RescheduleResponse{
		Success:   true,
		EventID:   resp.EventID,
		StartTime: resp.StartTime.In(h.loc).Format(time.RFC3339),
		EndTime:   resp.EndTime.In(h.loc).Format(time.RFC3339),
		Timezone:  resp.Timezone,
	})
}
