package find_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/echoassist/scheduling-service/internal/api/handlers"
	usecase "github.com/echoassist/scheduling-service/internal/usecase/find_slots"
	"github.com/echoassist/scheduling-service/pkg/ptr"
)

// Handler обрабатывает HTTP запросы поиска свободных слотов
type Handler struct {
	uc  FindSlotsUseCase
	loc *time.Location
	log Logger
}

// NewHandler создает новый экземпляр handler
func NewHandler(uc FindSlotsUseCase, loc *time.Location, log Logger) *Handler {
	return &Handler{
		uc:  uc,
		loc: loc,
		log: log,
	}
}

// Handle обрабатывает POST /vapi/find-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FindSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[FindSlots.Handle] Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, "invalid request body")
		return
	}

	ucReq := &usecase.Request{SlotDurationMinutes: req.SlotDurationMin}

	if req.StartDateTimeISO != "" {
		start, err := time.Parse(time.RFC3339, req.StartDateTimeISO)
		if err != nil {
			h.log.Warn("[FindSlots.Handle] Invalid startDateTimeISO: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeMissingFields, "startDateTimeISO must be a valid ISO 8601 timestamp")
			return
		}
		ucReq.Start = ptr.Ptr(start)
	}
	if req.EndDateTimeISO != "" {
		end, err := time.Parse(time.RFC3339, req.EndDateTimeISO)
		if err != nil {
			h.log.Warn("[FindSlots.Handle] Invalid endDateTimeISO: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeMissingFields, "endDateTimeISO must be a valid ISO 8601 timestamp")
			return
		}
		ucReq.End = ptr.Ptr(end)
	}

	resp, err := h.uc.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeMissingFields, err.Error())
		case errors.Is(err, usecase.ErrOAuthNotConnected):
			handlers.RespondBadRequest(w, handlers.CodeOAuthNotConnected, "Google Calendar is not connected")
		default:
			h.log.Error("[FindSlots.Handle] Execute failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	out := FindSlotsResponse{
		Success:  true,
		Slots:    make([]SlotView, 0, len(resp.Slots)),
		Timezone: resp.Timezone,
	}
	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotView{
			Start: slot.Start.In(h.loc).Format(time.RFC3339),
			End:   slot.End.In(h.loc).Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}
