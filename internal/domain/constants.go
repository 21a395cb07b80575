package domain

import "time"

// Slot generation parameters
const (
	// SlotStepMinutes шаг генерации кандидатов слотов
	SlotStepMinutes = 30

	// MaxSlotsPerSearch верхняя граница на количество слотов в одном поиске
	// Это ресурсное ограничение, а не бизнес-правило: без него большое окно
	// поиска приводит к неограниченной генерации
	MaxSlotsPerSearch = 60

	// DefaultSearchWindowDays окно поиска по умолчанию (now -> now+14d)
	DefaultSearchWindowDays = 14

	// DefaultDurationMinutes длительность записи по умолчанию
	DefaultDurationMinutes = 30
)

// Business-hour policy: Monday-Friday, 09:00-18:00 local business timezone.
// The policy is fixed; times outside of it are never offered regardless of
// busy data.
const (
	BusinessOpenHour  = 9
	BusinessCloseHour = 18
)

// BusinessWeekdays дни недели, в которые ведётся запись
var BusinessWeekdays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
}

// DefaultTimezone таймзона бизнеса по умолчанию
const DefaultTimezone = "America/New_York"
