package find_slots

import (
	"time"

	"github.com/echoassist/scheduling-service/internal/domain"
)

// Request модель запроса на поиск доступных слотов
// Не заданные границы окна замещаются значением по умолчанию: now -> now+14d
type Request struct {
	Start               *time.Time // Начало окна поиска (опционально)
	End                 *time.Time // Конец окна поиска (опционально)
	SlotDurationMinutes int        // Длительность слота, 0 = значение по умолчанию
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Slots    []domain.Slot // Упорядоченный список слотов
	Timezone string        // Таймзона бизнеса
}
