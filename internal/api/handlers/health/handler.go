package health

import (
	"net/http"

	"github.com/echoassist/scheduling-service/internal/api/handlers"
)

// Handler liveness-проверка
type Handler struct{}

// NewHandler создает новый экземпляр handler
func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET / и GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
