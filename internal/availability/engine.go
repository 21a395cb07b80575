// Package availability вычисляет доступные для записи слоты по free/busy
// данным календаря и фиксированной политике рабочих часов.
package availability

import (
	"time"

	"github.com/echoassist/scheduling-service/internal/domain"
)

// Engine генератор доступных слотов
// Все вычисления ведутся в таймзоне бизнеса
type Engine struct {
	loc *time.Location
}

// NewEngine создает движок доступности для указанной таймзоны бизнеса
func NewEngine(loc *time.Location) *Engine {
	return &Engine{loc: loc}
}

// Location возвращает таймзону бизнеса
func (e *Engine) Location() *time.Location {
	return e.loc
}

// FindSlots возвращает упорядоченный список доступных слотов в окне window.
//
// Кандидаты генерируются с фиксированным шагом domain.SlotStepMinutes начиная
// с начала окна, каждый длиной slotDurationMinutes. Кандидат принимается,
// только если он целиком лежит в рабочих часах (Пн-Пт 09:00-18:00) и не
// пересекается ни с одним busy-интервалом (полуоткрытая семантика).
//
// Генерация останавливается при достижении domain.MaxSlotsPerSearch
// результатов или при исчерпании окна, смотря что наступит раньше.
func (e *Engine) FindSlots(window domain.TimeRange, slotDurationMinutes int, busy []domain.BusyInterval) []domain.Slot {
	slots := make([]domain.Slot, 0)

	if !window.IsValid() || slotDurationMinutes <= 0 {
		return slots
	}

	step := time.Duration(domain.SlotStepMinutes) * time.Minute
	duration := time.Duration(slotDurationMinutes) * time.Minute

	for start := window.Start; start.Before(window.End); start = start.Add(step) {
		if len(slots) >= domain.MaxSlotsPerSearch {
			break
		}

		candidate := domain.TimeRange{Start: start, End: start.Add(duration)}

		// Проверяем весь интервал кандидата, а не только его начало:
		// слот, начинающийся в 17:45 при длительности 30 минут, выходит
		// за границу рабочего дня и не предлагается
		if !e.withinBusinessHours(candidate) {
			continue
		}

		if !e.IsSlotFree(candidate, busy) {
			continue
		}

		slots = append(slots, domain.Slot{
			Start:    candidate.Start,
			End:      candidate.End,
			Timezone: e.loc.String(),
		})
	}

	return slots
}

// IsSlotFree проверяет один кандидат на пересечение с busy-интервалами
// Используется оркестратором бронирования для повторной проверки слота
// перед записью в календарь
func (e *Engine) IsSlotFree(slot domain.TimeRange, busy []domain.BusyInterval) bool {
	for _, interval := range busy {
		if slot.Overlaps(interval) {
			return false
		}
	}
	return true
}

// withinBusinessHours проверяет, что интервал целиком лежит в рабочих часах
// одного рабочего дня
func (e *Engine) withinBusinessHours(r domain.TimeRange) bool {
	start := r.Start.In(e.loc)
	end := r.End.In(e.loc)

	if !domain.BusinessWeekdays[start.Weekday()] {
		return false
	}

	dayOpen := time.Date(start.Year(), start.Month(), start.Day(), domain.BusinessOpenHour, 0, 0, 0, e.loc)
	dayClose := time.Date(start.Year(), start.Month(), start.Day(), domain.BusinessCloseHour, 0, 0, 0, e.loc)

	return !start.Before(dayOpen) && !end.After(dayClose)
}
