package reschedule_appointment

import "time"

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID   string
	NewStart        time.Time
	DurationMinutes int // 0 = значение по умолчанию
	Notes           string
}

// Response модель ответа с перенесенной записью
// Идентификатор события сохраняется
type Response struct {
	EventID   string
	StartTime time.Time
	EndTime   time.Time
	Timezone  string
}
