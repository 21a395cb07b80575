package inbound_sms

import (
	"net/http"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Тексты TwiML-ответов на ключевые слова
const (
	optOutReply  = "You have been unsubscribed from appointment notifications. Reply START to resubscribe."
	helpReply    = "Reply STOP to unsubscribe from appointment notifications. For help with your appointment, please call the business directly."
	twimlEmpty   = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`
	twimlMessage = `<?xml version="1.0" encoding="UTF-8"?><Response><Message>%REPLY%</Message></Response>`
)

// optOutKeywords стандартные стоп-слова Twilio
var optOutKeywords = map[string]struct{}{
	"STOP":        {},
	"UNSUBSCRIBE": {},
	"CANCEL":      {},
	"END":         {},
	"QUIT":        {},
}

// Handler обрабатывает входящие SMS от Twilio
type Handler struct {
	log Logger
}

// NewHandler создает новый экземпляр handler
func NewHandler(log Logger) *Handler {
	return &Handler{log: log}
}

// Handle POST /twilio/inbound — отвечает TwiML-документом
// Twilio присылает form-encoded поля From и Body
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warn("[InboundSMS.Handle] Failed to parse form: %v", err)
		respondTwiML(w, twimlEmpty)
		return
	}

	from := r.PostFormValue("From")
	body := strings.ToUpper(strings.TrimSpace(r.PostFormValue("Body")))

	h.log.Info("[InboundSMS.Handle] Inbound SMS from %s: %q", from, body)

	switch {
	case isOptOut(body):
		respondTwiML(w, withReply(optOutReply))
	case body == "HELP":
		respondTwiML(w, withReply(helpReply))
	default:
		// Прочие сообщения не требуют автоответа
		respondTwiML(w, twimlEmpty)
	}
}

func isOptOut(body string) bool {
	_, ok := optOutKeywords[body]
	return ok
}

func withReply(reply string) string {
	return strings.Replace(twimlMessage, "%REPLY%", reply, 1)
}

func respondTwiML(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
