package handoff

import (
	"fmt"
	"net/http"

	"github.com/echoassist/scheduling-service/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// HandoffResponse тело ответа с контактом живого человека
type HandoffResponse struct {
	Success      bool   `json:"success"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Message      string `json:"message"`
}

// Handler отдает голосовому агенту контакт для передачи разговора человеку
type Handler struct {
	contactName  string
	contactPhone string
	message      string
	log          Logger
}

// NewHandler создает новый экземпляр handler
func NewHandler(contactName, contactPhone, message string, log Logger) *Handler {
	return &Handler{
		contactName:  contactName,
		contactPhone: contactPhone,
		message:      message,
		log:          log,
	}
}

// Handle обрабатывает POST /vapi/handoff
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	h.log.Info("[Handoff.Handle] Handoff requested")

	msg := h.message
	if msg == "" {
		if h.contactPhone != "" {
			msg = fmt.Sprintf("Please call %s to speak with a person.", h.contactPhone)
		} else {
			msg = "A team member will follow up with you shortly."
		}
	}

	handlers.RespondJSON(w, http.StatusOK, HandoffResponse{
		Success:      true,
		ContactName:  h.contactName,
		ContactPhone: h.contactPhone,
		Message:      msg,
	})
}
